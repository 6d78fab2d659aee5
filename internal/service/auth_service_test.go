package service

import (
	"context"
	"testing"

	"happycust-be/internal/dto"
	"happycust-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*fakeStore, IAuthService) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := &fakeStore{}
	return store, NewAuthService(&fakeFactory{store: store})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account and issues a session", func(t *testing.T) {
		store, svc := newAuthFixture(t)

		res, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice@example.com", res.User.Email)
		assert.Equal(t, "ADMIN", res.User.Role)

		require.Len(t, store.users, 1)
		require.NotNil(t, store.users[0].PasswordHash)
		assert.NotEqual(t, "password123", *store.users[0].PasswordHash)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		req := &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc IAuthService) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		_, svc := newAuthFixture(t)
		register(t, svc)

		res, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, svc := newAuthFixture(t)
		register(t, svc)

		_, errUnknown := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		_, errWrongPw := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

		var appErr *serverutils.AppError
		require.ErrorAs(t, errUnknown, &appErr)
		assert.Equal(t, 401, appErr.Code)
		unknownMsg := appErr.Message

		require.ErrorAs(t, errWrongPw, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, unknownMsg, appErr.Message)
	})

	t.Run("oauth-only account has no password to check", func(t *testing.T) {
		store, svc := newAuthFixture(t)
		register(t, svc)
		store.users[0].PasswordHash = nil

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	store, svc := newAuthFixture(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	res, err := svc.Me(ctx, store.users[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Name)
	assert.Equal(t, "alice@example.com", res.Email)
}
