package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taphoa39/books-backend-go/internal/domain/employee"
	"github.com/taphoa39/books-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	ma_nhan_vien, ho_ten, ngay_sinh, gioi_tinh, so_cccd, phong_ban, chuc_danh,
	ngay_bat_dau, ngay_ket_thuc, so_dien_thoai, email, dia_chi, hinh_anh,
	nhan_vien_khoan, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.MaNhanVien, &emp.HoTen, &emp.NgaySinh, &emp.GioiTinh, &emp.SoCCCD,
		&emp.PhongBan, &emp.ChucDanh, &emp.NgayBatDau, &emp.NgayKetThuc,
		&emp.SoDienThoai, &emp.Email, &emp.DiaChi, &emp.HinhAnh,
		&emp.NhanVienKhoan, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			ma_nhan_vien, ho_ten, ngay_sinh, gioi_tinh, so_cccd, phong_ban,
			chuc_danh, ngay_bat_dau, ngay_ket_thuc, so_dien_thoai, email,
			dia_chi, hinh_anh, nhan_vien_khoan
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.MaNhanVien, emp.HoTen, emp.NgaySinh, emp.GioiTinh, emp.SoCCCD,
		emp.PhongBan, emp.ChucDanh, emp.NgayBatDau, emp.NgayKetThuc,
		emp.SoDienThoai, emp.Email, emp.DiaChi, emp.HinhAnh, emp.NhanVienKhoan,
	))
	if err != nil {
		if strings.Contains(err.Error(), "employees_pkey") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByMaNhanVien implements employee.Repository.
func (r *employeeRepositoryImpl) GetByMaNhanVien(ctx context.Context, maNhanVien string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ma_nhan_vien = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, maNhanVien))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", maNhanVien, err)
	}

	return emp, nil
}

// GetAll implements employee.Repository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY ma_nhan_vien`)
}

// GetActive implements employee.Repository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE ngay_ket_thuc IS NULL ORDER BY ma_nhan_vien`)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, query string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			ho_ten = $2, ngay_sinh = $3, gioi_tinh = $4, so_cccd = $5,
			phong_ban = $6, chuc_danh = $7, ngay_bat_dau = $8, ngay_ket_thuc = $9,
			so_dien_thoai = $10, email = $11, dia_chi = $12, hinh_anh = $13,
			nhan_vien_khoan = $14, updated_at = NOW()
		WHERE ma_nhan_vien = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.MaNhanVien, emp.HoTen, emp.NgaySinh, emp.GioiTinh, emp.SoCCCD,
		emp.PhongBan, emp.ChucDanh, emp.NgayBatDau, emp.NgayKetThuc,
		emp.SoDienThoai, emp.Email, emp.DiaChi, emp.HinhAnh, emp.NhanVienKhoan,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", emp.MaNhanVien, err)
	}

	return updated, nil
}

// Terminate implements employee.Repository.
func (r *employeeRepositoryImpl) Terminate(ctx context.Context, maNhanVien string, ngayKetThuc string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET ngay_ket_thuc = $2::date, updated_at = NOW()
		WHERE ma_nhan_vien = $1
		RETURNING ma_nhan_vien
	`

	var id string
	if err := q.QueryRow(ctx, query, maNhanVien, ngayKetThuc).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to terminate employee %s: %w", maNhanVien, err)
	}

	return nil
}
