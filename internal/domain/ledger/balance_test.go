package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeRunningBalanceCashBook(t *testing.T) {
	entries := []*QuyTienMatEntry{
		{Ngay: "2024-12-01", SoTienThu: d(5_000_000)},
		{Ngay: "2024-12-05", SoTienChi: d(1_500_000)},
	}
	closing := ComputeRunningBalance(entries, d(3_500_000))

	assert.True(t, entries[0].SoTienTon.Equal(d(8_500_000)), "first row: %s", entries[0].SoTienTon)
	assert.True(t, entries[1].SoTienTon.Equal(d(7_000_000)), "second row: %s", entries[1].SoTienTon)
	assert.True(t, closing.Equal(d(7_000_000)))
}

func TestComputeRunningBalanceEmpty(t *testing.T) {
	closing := ComputeRunningBalance([]*QuyTienMatEntry{}, d(1_234_567))
	assert.True(t, closing.Equal(d(1_234_567)), "closing must equal opening for an empty book")
}

func TestComputeRunningBalancePrefixSums(t *testing.T) {
	entries := []*TienNganHangEntry{
		{Ngay: "2024-12-01", SoTienGuiVao: d(10_000_000)},
		{Ngay: "2024-12-02", SoTienRutRa: d(4_000_000)},
		{Ngay: "2024-12-03", SoTienGuiVao: d(1_000_000), SoTienRutRa: d(500_000)},
	}
	opening := d(2_000_000)
	ComputeRunningBalance(entries, opening)

	// Each row's balance equals the opening balance plus the prefix sum of
	// inflow minus outflow up to and including that row.
	running := opening
	for i, e := range entries {
		in, out := e.Flow()
		running = running.Add(in).Sub(out)
		assert.True(t, e.SoTienConLai.Equal(running), "row %d: got %s want %s", i, e.SoTienConLai, running)
	}
}

func TestSortByDateBeforeBalance(t *testing.T) {
	entries := []*QuyTienMatEntry{
		{Ngay: "2024-12-10", SoTienChi: d(300)},
		{Ngay: "2024-12-01", SoTienThu: d(1_000)},
		{Ngay: "2024-12-05", SoTienThu: d(500)},
	}
	SortByDate(entries)
	closing := ComputeRunningBalance(entries, decimal.Zero)

	assert.Equal(t, "2024-12-01", entries[0].Ngay)
	assert.True(t, entries[0].SoTienTon.Equal(d(1_000)))
	assert.True(t, entries[1].SoTienTon.Equal(d(1_500)))
	assert.True(t, entries[2].SoTienTon.Equal(d(1_200)))
	assert.True(t, closing.Equal(d(1_200)))
}

func TestComputePayablesBalanceColumnsIndependent(t *testing.T) {
	entries := []*LuongBaoHiemEntry{
		{
			Ngay:         "2024-12-01",
			LuongPhaiTra: d(10_000_000),
			BHXHPhaiNop:  d(800_000),
			BHYTPhaiNop:  d(150_000),
			BHTNPhaiNop:  d(100_000),
		},
		{
			Ngay:       "2024-12-15",
			LuongDaTra: d(6_000_000),
			BHXHDaNop:  d(800_000),
		},
	}
	opening := PayablesOpening{TienLuong: d(1_000_000)}
	closing := ComputePayablesBalance(entries, opening)

	assert.True(t, entries[0].LuongConPhaiTra.Equal(d(11_000_000)))
	assert.True(t, entries[0].BHXHConPhaiNop.Equal(d(800_000)))
	assert.True(t, entries[1].LuongConPhaiTra.Equal(d(5_000_000)))
	assert.True(t, entries[1].BHXHConPhaiNop.Equal(decimal.Zero))
	assert.True(t, entries[1].BHYTConPhaiNop.Equal(d(150_000)), "untouched column keeps its balance")
	assert.True(t, entries[1].BHTNConPhaiNop.Equal(d(100_000)))

	assert.True(t, closing.TienLuong.Equal(d(5_000_000)))
	assert.True(t, closing.BHXH.Equal(decimal.Zero))
	assert.True(t, closing.BHYT.Equal(d(150_000)))
	assert.True(t, closing.BHTN.Equal(d(100_000)))
}

func TestLuongKhoanDeriveWithholding(t *testing.T) {
	tests := []struct {
		name     string
		soTien   int64
		camKet   bool
		entered  int64
		wantThue int64
	}{
		{"below threshold zeroed", 1_999_999, false, 199_999, 0},
		{"at threshold kept", 2_000_000, false, 200_000, 200_000},
		{"above threshold kept", 3_000_000, false, 300_000, 300_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &LuongKhoanEntry{
				NgayChi:         "2024-12-01",
				SoTienKhoan:     d(tt.soTien),
				CamKet08:        tt.camKet,
				ThueTNCNKhauTru: d(tt.entered),
			}
			e.Derive()
			assert.True(t, e.ThueTNCNKhauTru.Equal(d(tt.wantThue)), "thue: %s", e.ThueTNCNKhauTru)
			assert.True(t, e.SoTienThucTra.Equal(d(tt.soTien-tt.wantThue)), "thucTra: %s", e.SoTienThucTra)
		})
	}
}

func TestTienNganHangDeriveHighlight(t *testing.T) {
	e := &TienNganHangEntry{Ngay: "2024-12-01", SoTienGuiVao: d(20_000_000)}
	e.Derive()
	assert.False(t, e.Highlight, "exactly 20,000,000 is not highlighted")

	e.SoTienGuiVao = d(20_000_001)
	e.Derive()
	assert.True(t, e.Highlight)

	e = &TienNganHangEntry{Ngay: "2024-12-02", SoTienRutRa: d(25_000_000)}
	e.Derive()
	assert.True(t, e.Highlight)
}

func TestVatLieuDerive(t *testing.T) {
	e := &VatLieuEntry{
		Ngay:        "2024-12-01",
		TonDauKy:    d(100),
		NhapTrongKy: d(50),
		XuatTrongKy: d(30),
		HaoHutHuy:   d(5),
	}
	e.Derive()
	assert.True(t, e.TonCuoiKy.Equal(d(115)))
}

func TestLuongChinhThucEntryDate(t *testing.T) {
	e := &LuongChinhThucEntry{Thang: "12/2024"}
	assert.Equal(t, "2024-12-01", e.EntryDate())
}

func TestBookValidity(t *testing.T) {
	for _, b := range AllBooks {
		assert.True(t, b.IsValid())
	}
	assert.False(t, Book("s9_unknown").IsValid())

	assert.True(t, BookQuyTienMat.HasRunningBalance())
	assert.True(t, BookLuongBaoHiem.HasRunningBalance())
	assert.False(t, BookDoanhThu.HasRunningBalance())
}
