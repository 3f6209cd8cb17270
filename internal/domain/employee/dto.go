package employee

import (
	"time"

	"github.com/taphoa39/books-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	MaNhanVien    string  `json:"maNhanVien"`
	HoTen         string  `json:"hoTen"`
	NgaySinh      *string `json:"ngaySinh,omitempty"`
	GioiTinh      string  `json:"gioiTinh,omitempty"`
	SoCCCD        string  `json:"soCCCD,omitempty"`
	PhongBan      string  `json:"phongBan,omitempty"`
	ChucDanh      string  `json:"chucDanh,omitempty"`
	NgayBatDau    *string `json:"ngayBatDau,omitempty"`
	SoDienThoai   string  `json:"soDienThoai,omitempty"`
	Email         string  `json:"email,omitempty"`
	DiaChi        string  `json:"diaChi,omitempty"`
	HinhAnh       string  `json:"hinhAnh,omitempty"`
	NhanVienKhoan bool    `json:"nhanVienKhoan"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MaNhanVien) {
		errs = append(errs, validator.ValidationError{Field: "maNhanVien", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.MaNhanVien) {
		errs = append(errs, validator.ValidationError{Field: "maNhanVien", Message: "must look like NV001"})
	}
	if validator.IsEmpty(r.HoTen) {
		errs = append(errs, validator.ValidationError{Field: "hoTen", Message: "is required"})
	}
	if r.SoCCCD != "" && !validator.IsValidCCCD(r.SoCCCD) {
		errs = append(errs, validator.ValidationError{Field: "soCCCD", Message: "must be a 9 or 12 digit ID number"})
	}
	if r.SoDienThoai != "" && !validator.IsValidPhoneNumber(r.SoDienThoai) {
		errs = append(errs, validator.ValidationError{Field: "soDienThoai", Message: "is not a valid phone number"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	for _, d := range []struct{ field, value string }{
		{"ngaySinh", deref(r.NgaySinh)},
		{"ngayBatDau", deref(r.NgayBatDau)},
	} {
		if d.value != "" {
			if _, ok := validator.IsValidDate(d.value); !ok {
				errs = append(errs, validator.ValidationError{Field: d.field, Message: "must be a valid date (YYYY-MM-DD)"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	HoTen         *string `json:"hoTen,omitempty"`
	NgaySinh      *string `json:"ngaySinh,omitempty"`
	GioiTinh      *string `json:"gioiTinh,omitempty"`
	SoCCCD        *string `json:"soCCCD,omitempty"`
	PhongBan      *string `json:"phongBan,omitempty"`
	ChucDanh      *string `json:"chucDanh,omitempty"`
	NgayBatDau    *string `json:"ngayBatDau,omitempty"`
	NgayKetThuc   *string `json:"ngayKetThuc,omitempty"`
	SoDienThoai   *string `json:"soDienThoai,omitempty"`
	Email         *string `json:"email,omitempty"`
	DiaChi        *string `json:"diaChi,omitempty"`
	HinhAnh       *string `json:"hinhAnh,omitempty"`
	NhanVienKhoan *bool   `json:"nhanVienKhoan,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HoTen != nil && validator.IsEmpty(*r.HoTen) {
		errs = append(errs, validator.ValidationError{Field: "hoTen", Message: "cannot be empty"})
	}
	if r.SoCCCD != nil && *r.SoCCCD != "" && !validator.IsValidCCCD(*r.SoCCCD) {
		errs = append(errs, validator.ValidationError{Field: "soCCCD", Message: "must be a 9 or 12 digit ID number"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	for _, d := range []struct {
		field string
		value *string
	}{
		{"ngaySinh", r.NgaySinh},
		{"ngayBatDau", r.NgayBatDau},
		{"ngayKetThuc", r.NgayKetThuc},
	} {
		if d.value != nil && *d.value != "" {
			if _, ok := validator.IsValidDate(*d.value); !ok {
				errs = append(errs, validator.ValidationError{Field: d.field, Message: "must be a valid date (YYYY-MM-DD)"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	MaNhanVien    string  `json:"maNhanVien"`
	HoTen         string  `json:"hoTen"`
	NgaySinh      *string `json:"ngaySinh,omitempty"`
	GioiTinh      string  `json:"gioiTinh,omitempty"`
	SoCCCD        string  `json:"soCCCD,omitempty"`
	PhongBan      string  `json:"phongBan,omitempty"`
	ChucDanh      string  `json:"chucDanh,omitempty"`
	NgayBatDau    *string `json:"ngayBatDau,omitempty"`
	NgayKetThuc   *string `json:"ngayKetThuc,omitempty"`
	SoDienThoai   string  `json:"soDienThoai,omitempty"`
	Email         string  `json:"email,omitempty"`
	DiaChi        string  `json:"diaChi,omitempty"`
	HinhAnh       string  `json:"hinhAnh,omitempty"`
	NhanVienKhoan bool    `json:"nhanVienKhoan"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		MaNhanVien:    e.MaNhanVien,
		HoTen:         e.HoTen,
		NgaySinh:      formatDate(e.NgaySinh),
		GioiTinh:      e.GioiTinh,
		SoCCCD:        e.SoCCCD,
		PhongBan:      e.PhongBan,
		ChucDanh:      e.ChucDanh,
		NgayBatDau:    formatDate(e.NgayBatDau),
		NgayKetThuc:   formatDate(e.NgayKetThuc),
		SoDienThoai:   e.SoDienThoai,
		Email:         e.Email,
		DiaChi:        e.DiaChi,
		HinhAnh:       e.HinhAnh,
		NhanVienKhoan: e.NhanVienKhoan,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
