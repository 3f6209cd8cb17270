package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair and
	// revokes the old refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	Logout(refreshToken string)

	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error

	// EnsureAdminUser creates the configured admin account on first start.
	// Existing accounts are left untouched.
	EnsureAdminUser(ctx context.Context, username, password string) error
}
