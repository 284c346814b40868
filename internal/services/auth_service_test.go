package services

import (
	"context"
	"testing"

	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "JohnDoe@Example.com",
		Username:  "johndoe",
		Password:  "secret123",
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "johndoe@example.com", resp.User.Email)

	stored, err := f.users.GetByUsername(ctx, "johndoe")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, VerifyPassword("secret123", stored.Password))

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "johndoe", Password: "secret123"})
	require.NoError(t, err)
	id, err := f.tokens.Validate(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, id.UserID)
}

func TestAuthService_RegisterRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrUserTaken)

	sameEmail := registerRequest()
	sameEmail.Username = "someoneelse"
	_, err = f.auth.Register(ctx, sameEmail)
	assert.ErrorIs(t, err, ErrUserTaken)

	invalid := registerRequest()
	invalid.Username = "other"
	invalid.Email = "nope"
	_, err = f.auth.Register(ctx, invalid)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestAuthService_LoginRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.auth.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "johndoe", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshRotates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.auth.Register(ctx, registerRequest())
	require.NoError(t, err)

	second, err := f.auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, f.auth.Logout(ctx, &dto.LogoutRequest{RefreshToken: second.RefreshToken}))
	_, err = f.auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: second.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RefreshExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Register(ctx, registerRequest())
	require.NoError(t, err)
	f.refresh.Expire()

	_, err = f.auth.Refresh(ctx, &dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	n, err := f.auth.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
