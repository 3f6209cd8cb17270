package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/taphoa39/books-backend-go/internal/pkg/validator"
)

// SaveRecordRequest carries one payroll line to save. Derived columns in
// the request body are ignored; the server recomputes them.
type SaveRecordRequest struct {
	MaNhanVien    string `json:"maNhanVien"`
	HoTen         string `json:"hoTen"`
	ChucDanh      string `json:"chucDanh,omitempty"`
	Period        string `json:"period"`
	NhanVienKhoan bool   `json:"nhanVienKhoan"`

	LuongCoBan       decimal.Decimal `json:"luongCoBan"`
	PhuCapCaKeoDai   decimal.Decimal `json:"phuCapCaKeoDai"`
	PhuCapTrachNhiem decimal.Decimal `json:"phuCapTracNhiem"`
	PhuCapQuanLyCa   decimal.Decimal `json:"phuCapQuanLyCa"`
	PhuCapXang       decimal.Decimal `json:"phuCapXang"`
	PhuCapDienThoai  decimal.Decimal `json:"phuCapDienThoai"`
	PhuCapAnTrua     decimal.Decimal `json:"phuCapAnTrua"`

	TongGioLam float64         `json:"tongGioLam"`
	DonGiaGio  decimal.Decimal `json:"donGiaGio"`
	Thuong     decimal.Decimal `json:"thuong"`
	PhuCap     decimal.Decimal `json:"phuCap"`
}

func (r SaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MaNhanVien) {
		errs = append(errs, validator.ValidationError{Field: "maNhanVien", Message: "is required"})
	}
	if validator.IsEmpty(r.HoTen) {
		errs = append(errs, validator.ValidationError{Field: "hoTen", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}
	if r.TongGioLam < 0 {
		errs = append(errs, validator.ValidationError{Field: "tongGioLam", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecord builds the domain record with derived columns freshly computed.
func (r SaveRecordRequest) ToRecord() Record {
	rec := Record{
		ID:               RecordKey{MaNhanVien: r.MaNhanVien, Period: r.Period}.String(),
		MaNhanVien:       r.MaNhanVien,
		HoTen:            r.HoTen,
		ChucDanh:         r.ChucDanh,
		Period:           r.Period,
		NhanVienKhoan:    r.NhanVienKhoan,
		LuongCoBan:       r.LuongCoBan,
		PhuCapCaKeoDai:   r.PhuCapCaKeoDai,
		PhuCapTrachNhiem: r.PhuCapTrachNhiem,
		PhuCapQuanLyCa:   r.PhuCapQuanLyCa,
		PhuCapXang:       r.PhuCapXang,
		PhuCapDienThoai:  r.PhuCapDienThoai,
		PhuCapAnTrua:     r.PhuCapAnTrua,
		TongGioLam:       r.TongGioLam,
		DonGiaGio:        r.DonGiaGio,
		Thuong:           r.Thuong,
		PhuCap:           r.PhuCap,
	}
	rec.Recalculate()
	return rec
}

type BatchSaveRequest struct {
	Records []SaveRecordRequest `json:"records"`
}

func (r BatchSaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "must not be empty"})
		return errs
	}
	for i, rec := range r.Records {
		if err := rec.Validate(); err != nil {
			if ves, ok := err.(validator.ValidationErrors); ok {
				for _, ve := range ves {
					errs = append(errs, validator.ValidationError{
						Field:   "records[" + validator.Itoa(i) + "]." + ve.Field,
						Message: ve.Message,
					})
				}
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID            string `json:"id"`
	MaNhanVien    string `json:"maNhanVien"`
	HoTen         string `json:"hoTen"`
	ChucDanh      string `json:"chucDanh,omitempty"`
	Period        string `json:"period"`
	NhanVienKhoan bool   `json:"nhanVienKhoan"`

	LuongCoBan       decimal.Decimal `json:"luongCoBan"`
	PhuCapCaKeoDai   decimal.Decimal `json:"phuCapCaKeoDai"`
	PhuCapTrachNhiem decimal.Decimal `json:"phuCapTracNhiem"`
	PhuCapQuanLyCa   decimal.Decimal `json:"phuCapQuanLyCa"`
	PhuCapXang       decimal.Decimal `json:"phuCapXang"`
	PhuCapDienThoai  decimal.Decimal `json:"phuCapDienThoai"`
	PhuCapAnTrua     decimal.Decimal `json:"phuCapAnTrua"`
	TongLuong        decimal.Decimal `json:"tongLuong"`
	BHXH             decimal.Decimal `json:"bhxh"`
	BHYT             decimal.Decimal `json:"bhyt"`
	BHTN             decimal.Decimal `json:"bhtn"`
	TongTrichBH      decimal.Decimal `json:"tongTrichBH"`
	ThucLinh         decimal.Decimal `json:"thucLinh"`

	TongGioLam   float64         `json:"tongGioLam"`
	DonGiaGio    decimal.Decimal `json:"donGiaGio"`
	TienKhoan    decimal.Decimal `json:"tienKhoan"`
	Thuong       decimal.Decimal `json:"thuong"`
	PhuCap       decimal.Decimal `json:"phuCap"`
	TongTienCong decimal.Decimal `json:"tongTienCong"`
	ThueTNCN     decimal.Decimal `json:"thueTNCN"`
	ThucTra      decimal.Decimal `json:"thucTra"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:               r.ID,
		MaNhanVien:       r.MaNhanVien,
		HoTen:            r.HoTen,
		ChucDanh:         r.ChucDanh,
		Period:           r.Period,
		NhanVienKhoan:    r.NhanVienKhoan,
		LuongCoBan:       r.LuongCoBan,
		PhuCapCaKeoDai:   r.PhuCapCaKeoDai,
		PhuCapTrachNhiem: r.PhuCapTrachNhiem,
		PhuCapQuanLyCa:   r.PhuCapQuanLyCa,
		PhuCapXang:       r.PhuCapXang,
		PhuCapDienThoai:  r.PhuCapDienThoai,
		PhuCapAnTrua:     r.PhuCapAnTrua,
		TongLuong:        r.TongLuong,
		BHXH:             r.BHXH,
		BHYT:             r.BHYT,
		BHTN:             r.BHTN,
		TongTrichBH:      r.TongTrichBH,
		ThucLinh:         r.ThucLinh,
		TongGioLam:       r.TongGioLam,
		DonGiaGio:        r.DonGiaGio,
		TienKhoan:        r.TienKhoan,
		Thuong:           r.Thuong,
		PhuCap:           r.PhuCap,
		TongTienCong:     r.TongTienCong,
		ThueTNCN:         r.ThueTNCN,
		ThucTra:          r.ThucTra,
	}
}

func ToResponses(recs []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(recs))
	for _, r := range recs {
		result = append(result, ToResponse(r))
	}
	return result
}

// SummaryResponse totals one period's payroll.
type SummaryResponse struct {
	Period          string          `json:"period"`
	RecordCount     int             `json:"recordCount"`
	RegularCount    int             `json:"regularCount"`
	ContractorCount int             `json:"contractorCount"`
	TotalThucLinh   decimal.Decimal `json:"totalThucLinh"`
	TotalThucTra    decimal.Decimal `json:"totalThucTra"`
	TotalTrichBH    decimal.Decimal `json:"totalTrichBH"`
	TotalThueTNCN   decimal.Decimal `json:"totalThueTNCN"`
}
