package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRecalculateSalaried(t *testing.T) {
	rec := Record{
		MaNhanVien:   "NV001",
		Period:       "2024-12",
		LuongCoBan:   d(5_000_000),
		PhuCapAnTrua: d(500_000),
	}
	rec.Recalculate()

	assert.True(t, rec.TongLuong.Equal(d(5_500_000)), "tongLuong: %s", rec.TongLuong)
	assert.True(t, rec.BHXH.Equal(d(440_000)), "bhxh: %s", rec.BHXH)
	assert.True(t, rec.BHYT.Equal(d(82_500)), "bhyt: %s", rec.BHYT)
	assert.True(t, rec.BHTN.Equal(d(55_000)), "bhtn: %s", rec.BHTN)
	assert.True(t, rec.TongTrichBH.Equal(d(577_500)), "tongTrichBH: %s", rec.TongTrichBH)
	assert.True(t, rec.ThucLinh.Equal(d(4_922_500)), "thucLinh: %s", rec.ThucLinh)
}

func TestRecalculateSalariedAllAllowances(t *testing.T) {
	rec := Record{
		LuongCoBan:       d(4_000_000),
		PhuCapCaKeoDai:   d(100_000),
		PhuCapTrachNhiem: d(200_000),
		PhuCapQuanLyCa:   d(300_000),
		PhuCapXang:       d(150_000),
		PhuCapDienThoai:  d(50_000),
		PhuCapAnTrua:     d(200_000),
	}
	rec.Recalculate()

	assert.True(t, rec.TongLuong.Equal(d(5_000_000)))
	assert.True(t, rec.ThucLinh.Equal(rec.TongLuong.Sub(rec.TongTrichBH)))
}

func TestContractorTaxBoundary(t *testing.T) {
	tests := []struct {
		name     string
		gross    int64
		wantThue int64
	}{
		{"below threshold", 1_500_000, 0},
		{"at 1,999,999", 1_999_999, 0},
		{"first taxed value", 2_000_000, 200_000},
		{"above threshold", 3_000_000, 300_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{
				NhanVienKhoan: true,
				Thuong:        d(tt.gross),
			}
			rec.Recalculate()
			assert.True(t, rec.ThueTNCN.Equal(d(tt.wantThue)),
				"thueTNCN for %d: got %s", tt.gross, rec.ThueTNCN)
			assert.True(t, rec.ThucTra.Equal(d(tt.gross-tt.wantThue)))
		})
	}
}

func TestRecalculateContractor(t *testing.T) {
	rec := Record{
		MaNhanVien:    "NV010",
		Period:        "2024-12",
		NhanVienKhoan: true,
		TongGioLam:    100,
		DonGiaGio:     d(25_000),
		Thuong:        d(300_000),
		PhuCap:        d(200_000),
	}
	rec.Recalculate()

	assert.True(t, rec.TienKhoan.Equal(d(2_500_000)), "tienKhoan: %s", rec.TienKhoan)
	assert.True(t, rec.TongTienCong.Equal(d(3_000_000)), "tongTienCong: %s", rec.TongTienCong)
	assert.True(t, rec.ThueTNCN.Equal(d(300_000)), "thueTNCN: %s", rec.ThueTNCN)
	assert.True(t, rec.ThucTra.Equal(d(2_700_000)), "thucTra: %s", rec.ThucTra)
}

func TestRecalculateContractorFractionalHours(t *testing.T) {
	rec := Record{
		NhanVienKhoan: true,
		TongGioLam:    10.5,
		DonGiaGio:     d(30_000),
	}
	rec.Recalculate()
	assert.True(t, rec.TienKhoan.Equal(d(315_000)), "tienKhoan: %s", rec.TienKhoan)
}

func TestRecalculateLeavesOtherVariantUntouched(t *testing.T) {
	rec := Record{
		NhanVienKhoan: true,
		DonGiaGio:     d(25_000),
		TongGioLam:    100,
		LuongCoBan:    d(5_000_000),
	}
	rec.Recalculate()

	assert.True(t, rec.TongLuong.IsZero(), "salaried columns must stay zero for contractors")
	assert.True(t, rec.BHXH.IsZero())
}

func TestRecordKeyRoundTrip(t *testing.T) {
	key := RecordKey{MaNhanVien: "NV001", Period: "2024-12"}
	assert.Equal(t, "NV001_2024-12", key.String())

	parsed, ok := ParseRecordKey("NV001_2024-12")
	require.True(t, ok)
	assert.Equal(t, key, parsed)
}

func TestParseRecordKeyEmployeeCodeWithUnderscore(t *testing.T) {
	parsed, ok := ParseRecordKey("NV_01_2024-12")
	require.True(t, ok)
	assert.Equal(t, "NV_01", parsed.MaNhanVien)
	assert.Equal(t, "2024-12", parsed.Period)
}

func TestParseRecordKeyInvalid(t *testing.T) {
	for _, id := range []string{"", "NV001", "_2024-12", "NV001_"} {
		_, ok := ParseRecordKey(id)
		assert.False(t, ok, "id %q should not parse", id)
	}
}
