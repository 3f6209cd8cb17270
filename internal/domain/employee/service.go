package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, maNhanVien string) (EmployeeResponse, error)

	// List returns active employees; includeTerminated widens it to all.
	List(ctx context.Context, includeTerminated bool) ([]EmployeeResponse, error)

	Update(ctx context.Context, maNhanVien string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Terminate soft-deletes by stamping NgayKetThuc.
	Terminate(ctx context.Context, maNhanVien string, ngayKetThuc string) error
}
