package employee

import (
	"time"
)

// Employee is a worker of the household business. MaNhanVien is the
// business key everything else references; records are never hard-deleted,
// termination is recorded in NgayKetThuc.
type Employee struct {
	MaNhanVien    string
	HoTen         string
	NgaySinh      *time.Time
	GioiTinh      string
	SoCCCD        string
	PhongBan      string
	ChucDanh      string
	NgayBatDau    *time.Time
	NgayKetThuc   *time.Time // nil = active
	SoDienThoai   string
	Email         string
	DiaChi        string
	HinhAnh       string
	NhanVienKhoan bool // contractor, paid by the hour
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive reports whether the employee has not been terminated.
func (e Employee) IsActive() bool {
	return e.NgayKetThuc == nil
}
