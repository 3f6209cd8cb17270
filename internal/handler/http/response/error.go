package response

import (
	"errors"
	"net/http"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
	"github.com/taphoa39/books-backend-go/internal/domain/auth"
	"github.com/taphoa39/books-backend-go/internal/domain/employee"
	"github.com/taphoa39/books-backend-go/internal/domain/ledger"
	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
	"github.com/taphoa39/books-backend-go/internal/domain/schedule"
	"github.com/taphoa39/books-backend-go/internal/domain/user"
	"github.com/taphoa39/books-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrAlreadyTerminated):
		Conflict(w, "Employee is already terminated")

	// Attendance and schedule domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found for payroll record")
	case errors.Is(err, payroll.ErrInvalidRecordID):
		BadRequest(w, "Payroll record id must be maNhanVien_period", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Period must be YYYY-MM", nil)

	// Ledger domain errors
	case errors.Is(err, ledger.ErrUnknownBook):
		NotFound(w, "Unknown ledger book")
	case errors.Is(err, ledger.ErrEntryNotFound):
		NotFound(w, "Ledger entry not found")
	case errors.Is(err, ledger.ErrOpeningBalanceNotFound):
		NotFound(w, "Opening balance not set for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
