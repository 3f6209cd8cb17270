package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
)

func TestRenderSalaried(t *testing.T) {
	rec := payroll.Record{
		ID:         "NV001_2024-12",
		MaNhanVien: "NV001",
		HoTen:      "Nguyen Van A",
		Period:     "2024-12",
		LuongCoBan: decimal.NewFromInt(5_000_000),
	}
	rec.Recalculate()

	pdf, err := Render(rec)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderContractor(t *testing.T) {
	rec := payroll.Record{
		ID:            "NV010_2024-12",
		MaNhanVien:    "NV010",
		HoTen:         "Tran Thi B",
		Period:        "2024-12",
		NhanVienKhoan: true,
		TongGioLam:    120.5,
		DonGiaGio:     decimal.NewFromInt(25_000),
	}
	rec.Recalculate()

	pdf, err := Render(rec)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFormatVND(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 VND"},
		{1_000, "1.000 VND"},
		{4_922_500, "4.922.500 VND"},
		{-1_500_000, "-1.500.000 VND"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVND(decimal.NewFromInt(tt.in)))
	}
}
