package employee

import "context"

// Repository defines data access methods for employees, keyed by the
// maNhanVien business key.
type Repository interface {
	// Create inserts a new employee. Returns ErrEmployeeCodeExists when the
	// business key is taken.
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByMaNhanVien(ctx context.Context, maNhanVien string) (Employee, error)

	// GetAll returns every employee, terminated ones included.
	GetAll(ctx context.Context) ([]Employee, error)

	// GetActive returns employees whose NgayKetThuc is unset.
	GetActive(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	// Terminate soft-deletes by setting NgayKetThuc. The record stays.
	Terminate(ctx context.Context, maNhanVien string, ngayKetThuc string) error
}
