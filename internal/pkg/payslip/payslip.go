// Package payslip renders payroll lines as PDF pay slips.
package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
)

// Render produces an A4 payslip for one payroll line. Contractors get the
// hours-and-rate layout, salaried staff the allowance-and-insurance one.
func Render(rec payroll.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "PHIEU LUONG / PAYSLIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Ma nhan vien: %s", rec.MaNhanVien))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Ho ten: %s", rec.HoTen))
	pdf.Ln(7)
	if rec.ChucDanh != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Chuc danh: %s", rec.ChucDanh))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Ky luong: %s", rec.Period))
	pdf.Ln(10)

	if rec.NhanVienKhoan {
		renderContractor(pdf, rec)
	} else {
		renderSalaried(pdf, rec)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSalaried(pdf *gofpdf.Fpdf, rec payroll.Record) {
	line(pdf, "Luong co ban", rec.LuongCoBan)
	allowances := rec.PhuCapCaKeoDai.
		Add(rec.PhuCapTrachNhiem).
		Add(rec.PhuCapQuanLyCa).
		Add(rec.PhuCapXang).
		Add(rec.PhuCapDienThoai).
		Add(rec.PhuCapAnTrua)
	line(pdf, "Tong phu cap", allowances)
	line(pdf, "Tong luong", rec.TongLuong)

	pdf.Ln(3)
	line(pdf, "BHXH (8%)", rec.BHXH)
	line(pdf, "BHYT (1.5%)", rec.BHYT)
	line(pdf, "BHTN (1%)", rec.BHTN)
	line(pdf, "Tong trich bao hiem", rec.TongTrichBH)

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Thuc linh", rec.ThucLinh)
}

func renderContractor(pdf *gofpdf.Fpdf, rec payroll.Record) {
	pdf.Cell(0, 8, fmt.Sprintf("Tong gio lam: %.2f gio", rec.TongGioLam))
	pdf.Ln(7)
	line(pdf, "Don gia gio", rec.DonGiaGio)
	line(pdf, "Tien khoan", rec.TienKhoan)
	line(pdf, "Thuong", rec.Thuong)
	line(pdf, "Phu cap", rec.PhuCap)
	line(pdf, "Tong tien cong", rec.TongTienCong)

	pdf.Ln(3)
	line(pdf, "Thue TNCN (10%)", rec.ThueTNCN)

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Thuc tra", rec.ThucTra)
}

func line(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(120, 8, label)
	pdf.CellFormat(0, 8, formatVND(amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}

// formatVND renders whole VND with dot thousand separators.
func formatVND(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out) + " VND"
	}
	return string(out) + " VND"
}
