package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/taphoa39/books-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		MaNhanVien:    req.MaNhanVien,
		HoTen:         req.HoTen,
		GioiTinh:      req.GioiTinh,
		SoCCCD:        req.SoCCCD,
		PhongBan:      req.PhongBan,
		ChucDanh:      req.ChucDanh,
		SoDienThoai:   req.SoDienThoai,
		Email:         req.Email,
		DiaChi:        req.DiaChi,
		HinhAnh:       req.HinhAnh,
		NhanVienKhoan: req.NhanVienKhoan,
	}
	var err error
	if emp.NgaySinh, err = parseDatePtr(req.NgaySinh); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.NgayBatDau, err = parseDatePtr(req.NgayBatDau); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, maNhanVien string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByMaNhanVien(ctx, maNhanVien)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, includeTerminated bool) ([]employee.EmployeeResponse, error) {
	var emps []employee.Employee
	var err error
	if includeTerminated {
		emps, err = s.employeeRepo.GetAll(ctx)
	} else {
		emps, err = s.employeeRepo.GetActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, maNhanVien string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByMaNhanVien(ctx, maNhanVien)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	applyString(&emp.HoTen, req.HoTen)
	applyString(&emp.GioiTinh, req.GioiTinh)
	applyString(&emp.SoCCCD, req.SoCCCD)
	applyString(&emp.PhongBan, req.PhongBan)
	applyString(&emp.ChucDanh, req.ChucDanh)
	applyString(&emp.SoDienThoai, req.SoDienThoai)
	applyString(&emp.Email, req.Email)
	applyString(&emp.DiaChi, req.DiaChi)
	applyString(&emp.HinhAnh, req.HinhAnh)
	if req.NhanVienKhoan != nil {
		emp.NhanVienKhoan = *req.NhanVienKhoan
	}
	if req.NgaySinh != nil {
		if emp.NgaySinh, err = parseDatePtr(req.NgaySinh); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.NgayBatDau != nil {
		if emp.NgayBatDau, err = parseDatePtr(req.NgayBatDau); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.NgayKetThuc != nil {
		if emp.NgayKetThuc, err = parseDatePtr(req.NgayKetThuc); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Terminate implements employee.Service.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, maNhanVien string, ngayKetThuc string) error {
	emp, err := s.employeeRepo.GetByMaNhanVien(ctx, maNhanVien)
	if err != nil {
		return err
	}
	if !emp.IsActive() {
		return employee.ErrAlreadyTerminated
	}
	if ngayKetThuc == "" {
		ngayKetThuc = time.Now().Format("2006-01-02")
	}

	return s.employeeRepo.Terminate(ctx, maNhanVien, ngayKetThuc)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	return &t, nil
}
