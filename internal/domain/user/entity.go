package user

import "time"

// User is an operator account. The deployment is a single-household tool,
// so in practice there is one admin account, but nothing below assumes it.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
