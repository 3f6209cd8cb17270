package payroll

import "errors"

var (
	ErrRecordNotFound   = errors.New("payroll record not found")
	ErrInvalidRecordID  = errors.New("payroll record id must be maNhanVien_period")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrEmployeeNotFound = errors.New("employee not found for payroll record")
)
