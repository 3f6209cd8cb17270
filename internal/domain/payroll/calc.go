package payroll

import "github.com/shopspring/decimal"

// Statutory deduction rates for salaried staff.
var (
	RateBHXH = decimal.NewFromFloat(0.08)  // social insurance
	RateBHYT = decimal.NewFromFloat(0.015) // health insurance
	RateBHTN = decimal.NewFromFloat(0.01)  // unemployment insurance
)

// RateThueTNCN is the flat personal income tax rate on contractor pay.
var RateThueTNCN = decimal.NewFromFloat(0.10)

// IncomeTaxThreshold: contractor pay is taxed only when it is strictly
// greater than this amount, so 2,000,000 VND is the first taxed value.
// A neighboring >= 2,000,000 rule exists for withholding commitments in the
// S4B wage book (ledger.WithholdingThreshold); the two are distinct
// regulatory rules and must not be unified.
var IncomeTaxThreshold = decimal.NewFromInt(1_999_999)

// TinhTongLuong is base salary plus the six allowance categories.
func TinhTongLuong(r Record) decimal.Decimal {
	return r.LuongCoBan.
		Add(r.PhuCapCaKeoDai).
		Add(r.PhuCapTrachNhiem).
		Add(r.PhuCapQuanLyCa).
		Add(r.PhuCapXang).
		Add(r.PhuCapDienThoai).
		Add(r.PhuCapAnTrua)
}

func TinhBHXH(r Record) decimal.Decimal { return TinhTongLuong(r).Mul(RateBHXH) }
func TinhBHYT(r Record) decimal.Decimal { return TinhTongLuong(r).Mul(RateBHYT) }
func TinhBHTN(r Record) decimal.Decimal { return TinhTongLuong(r).Mul(RateBHTN) }

func TinhTongTrichBH(r Record) decimal.Decimal {
	return TinhBHXH(r).Add(TinhBHYT(r)).Add(TinhBHTN(r))
}

func TinhThucLinh(r Record) decimal.Decimal {
	return TinhTongLuong(r).Sub(TinhTongTrichBH(r))
}

// TinhTienKhoan is hourly rate times hours from attendance.
func TinhTienKhoan(r Record) decimal.Decimal {
	return r.DonGiaGio.Mul(decimal.NewFromFloat(r.TongGioLam))
}

func TinhTongTienCong(r Record) decimal.Decimal {
	return TinhTienKhoan(r).Add(r.Thuong).Add(r.PhuCap)
}

// TinhThueTNCN applies the 10% rate only strictly above the threshold:
// 1,999,999 is untaxed, 2,000,000 owes 200,000.
func TinhThueTNCN(r Record) decimal.Decimal {
	gross := TinhTongTienCong(r)
	if gross.GreaterThan(IncomeTaxThreshold) {
		return gross.Mul(RateThueTNCN)
	}
	return decimal.Zero
}

func TinhThucTra(r Record) decimal.Decimal {
	return TinhTongTienCong(r).Sub(TinhThueTNCN(r))
}

// Recalculate refreshes the derived snapshot columns of the record's
// variant from its inputs.
func (r *Record) Recalculate() {
	if r.NhanVienKhoan {
		r.TienKhoan = TinhTienKhoan(*r)
		r.TongTienCong = TinhTongTienCong(*r)
		r.ThueTNCN = TinhThueTNCN(*r)
		r.ThucTra = TinhThucTra(*r)
		return
	}
	r.TongLuong = TinhTongLuong(*r)
	r.BHXH = TinhBHXH(*r)
	r.BHYT = TinhBHYT(*r)
	r.BHTN = TinhBHTN(*r)
	r.TongTrichBH = TinhTongTrichBH(*r)
	r.ThucLinh = TinhThucLinh(*r)
}
