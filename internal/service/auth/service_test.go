package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taphoa39/books-backend-go/internal/domain/auth"
	"github.com/taphoa39/books-backend-go/internal/domain/user"
	"github.com/taphoa39/books-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User // by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	if _, ok := f.users[newUser.Username]; ok {
		return user.User{}, user.ErrUsernameExists
	}
	newUser.ID = "user-" + newUser.Username
	f.users[newUser.Username] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	for username, u := range f.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			f.users[username] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(repo, jwtService), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), user.User{Username: username, PasswordHash: string(hash)})
	require.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.Username)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	first, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)

	// The exchanged token is revoked and cannot be replayed.
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	svc.Logout(resp.RefreshToken)

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	userID := repo.users["admin"].ID

	err := svc.ChangePassword(context.Background(), userID, auth.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "newpassword456"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "password123")

	err := svc.ChangePassword(context.Background(), repo.users["admin"].ID, auth.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword456",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_EnsureAdminUser_Idempotent(t *testing.T) {
	svc, repo := newTestService(t)

	require.NoError(t, svc.EnsureAdminUser(context.Background(), "admin", "password123"))
	originalHash := repo.users["admin"].PasswordHash

	// Second call must not overwrite the stored credentials.
	require.NoError(t, svc.EnsureAdminUser(context.Background(), "admin", "different"))
	assert.Equal(t, originalHash, repo.users["admin"].PasswordHash)
}
