package ledger

import (
	"encoding/json"

	"github.com/taphoa39/books-backend-go/internal/pkg/validator"
)

// NewEntry returns a zero row of the concrete type backing book.
func NewEntry(book Book) (Entry, error) {
	switch book {
	case BookDoanhThu:
		return &DoanhThuEntry{}, nil
	case BookVatLieu:
		return &VatLieuEntry{}, nil
	case BookChiPhi:
		return &ChiPhiEntry{}, nil
	case BookNghiaVuThue:
		return &NghiaVuThueEntry{}, nil
	case BookLuongChinhThuc:
		return &LuongChinhThucEntry{}, nil
	case BookLuongKhoan:
		return &LuongKhoanEntry{}, nil
	case BookCongNo:
		return &CongNoEntry{}, nil
	case BookLuongBaoHiem:
		return &LuongBaoHiemEntry{}, nil
	case BookQuyTienMat:
		return &QuyTienMatEntry{}, nil
	case BookTienNganHang:
		return &TienNganHangEntry{}, nil
	}
	return nil, ErrUnknownBook
}

// DecodeEntry unmarshals a stored or submitted row into the concrete type
// backing book.
func DecodeEntry(book Book, data []byte) (Entry, error) {
	e, err := NewEntry(book)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ValidateEntry checks the required fields of a submitted row before it is
// persisted. Missing required fields abort the save; nothing partial is
// written.
func ValidateEntry(e Entry) error {
	var errs validator.ValidationErrors

	requireDate := func(field, value string) {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "is required"})
			return
		}
		if _, ok := validator.IsValidDate(value); !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	require := func(field, value string) {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "is required"})
		}
	}
	requireMethod := func(field string, m PaymentMethod) {
		if m != PaymentCash && m != PaymentTransfer {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be TM or CK"})
		}
	}

	switch v := e.(type) {
	case *DoanhThuEntry:
		requireDate("ngayBan", v.NgayBan)
		require("soHoaDon", v.SoHoaDon)
		requireMethod("hinhThucBan", v.HinhThucBan)
		require("nhomHang", v.NhomHang)
	case *VatLieuEntry:
		requireDate("ngay", v.Ngay)
		require("tenHang", v.TenHang)
		require("donViTinh", v.DonViTinh)
	case *ChiPhiEntry:
		requireDate("ngayChi", v.NgayChi)
		require("noiDungChi", v.NoiDungChi)
		require("loaiChiPhi", v.LoaiChiPhi)
		requireMethod("hinhThucThanhToan", v.HinhThucThanhToan)
	case *NghiaVuThueEntry:
		requireDate("ngay", v.Ngay)
		require("loaiThue", v.LoaiThue)
	case *LuongChinhThucEntry:
		require("thang", v.Thang)
		require("hoTen", v.HoTen)
		requireMethod("hinhThucTra", v.HinhThucTra)
	case *LuongKhoanEntry:
		requireDate("ngayChi", v.NgayChi)
		require("hoTen", v.HoTen)
		require("congViecKhoan", v.CongViecKhoan)
		require("soCMND_CCCD", v.SoCCCD)
		// Piecework at or above the withholding threshold needs either the
		// Cam kết 08 commitment or an entered withheld amount.
		if !v.CamKet08 && v.SoTienKhoan.GreaterThanOrEqual(WithholdingThreshold) && v.ThueTNCNKhauTru.IsZero() {
			errs = append(errs, validator.ValidationError{
				Field:   "thueTNCNKhauTru",
				Message: "withholding required for payments of 2,000,000 VND or more without cam kết 08",
			})
		}
	case *CongNoEntry:
		requireDate("ngay", v.Ngay)
		require("doiTuong", v.DoiTuong)
		if v.LoaiDoiTuong != "NhaCungCap" && v.LoaiDoiTuong != "KhachHang" {
			errs = append(errs, validator.ValidationError{Field: "loaiDoiTuong", Message: "must be NhaCungCap or KhachHang"})
		}
	case *LuongBaoHiemEntry:
		requireDate("ngay", v.Ngay)
		require("noiDung", v.NoiDung)
	case *QuyTienMatEntry:
		requireDate("ngay", v.Ngay)
		require("noiDungThuChi", v.NoiDungThuChi)
	case *TienNganHangEntry:
		requireDate("ngay", v.Ngay)
		require("soChungTu", v.SoChungTu)
		require("noiDungGiaoDich", v.NoiDungGiaoDich)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BookView is the read model for one book and period: rows with derived
// columns populated, plus the opening and closing balances where the book
// carries one.
type BookView struct {
	Book           Book        `json:"book"`
	Entries        interface{} `json:"entries"`
	OpeningBalance interface{} `json:"openingBalance,omitempty"`
	ClosingBalance interface{} `json:"closingBalance,omitempty"`
}

// UpsertOpeningBalanceRequest sets the opening balance of a book for a
// period.
type UpsertOpeningBalanceRequest struct {
	Period    string           `json:"period"`
	SoDuDauKy json.Number      `json:"soDuDauKy"`
	Payables  *PayablesOpening `json:"payables,omitempty"`
}

func (r UpsertOpeningBalanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
