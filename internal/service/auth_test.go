package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overlaylab/rtsp-overlay/pkg/tokens"
)

func TestAuthService_CreateAccessToken_SetsExpectedClaims(t *testing.T) {
	svc := newTestAuthService(t)
	userID := uuid.NewString()

	token, err := svc.CreateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.AccessClaimsFromToken(token, svc.JWTSecret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_CreateRefreshToken_SetsExpectedClaims(t *testing.T) {
	svc := newTestAuthService(t)
	userID := uuid.NewString()

	token, err := svc.CreateRefreshToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.RefreshClaimsFromToken(token, svc.RefreshSecret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		username string
		want     error
	}{
		{name: "empty email", email: "", password: "secret1", username: "al", want: ErrMissingFields},
		{name: "empty password", email: "a@b.com", password: "", username: "al", want: ErrMissingFields},
		{name: "empty username", email: "a@b.com", password: "secret1", username: "   ", want: ErrMissingFields},
		{name: "no at sign", email: "ab.com", password: "secret1", username: "al", want: ErrInvalidEmail},
		{name: "no tld", email: "a@bcom", password: "secret1", username: "al", want: ErrInvalidEmail},
		{name: "one letter tld", email: "a@b.c", password: "secret1", username: "al", want: ErrInvalidEmail},
		{name: "short password", email: "a@b.com", password: "five5", username: "al", want: ErrShortPassword},
		{name: "short username", email: "a@b.com", password: "secret1", username: " a ", want: ErrShortUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Signup(ctx, tt.email, tt.password, tt.username)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Signup_IssuesBothTokens(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, "al@example.com", "secret1", "Al")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)

	claims, err := tokens.AccessClaimsFromToken(res.AccessToken, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.Subject)

	found, err := svc.CurrentUser(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, found.ID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "al@example.com", "secret1", "Al")
	require.NoError(t, err)

	res, err := svc.Signup(ctx, "AL@EXAMPLE.COM", "different", "Other")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Signin_GenericFailure(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "al@example.com", "secret1", "Al")
	require.NoError(t, err)

	// unknown email and wrong password fail identically
	_, errUnknown := svc.Signin(ctx, "nobody@example.com", "secret1")
	_, errWrongPw := svc.Signin(ctx, "al@example.com", "not-the-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_Signin_CaseInsensitiveEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "A@B.com", "secret1", "Al")
	require.NoError(t, err)

	res, err := svc.Signin(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "a@b.com", res.User.Email)
}

func TestAuthService_CurrentUser_Vanished(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.CurrentUser(ctx, uuid.NewString())
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)

	user, err = svc.CurrentUser(ctx, "not-a-uuid")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Refresh_MintsAccessToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, "al@example.com", "secret1", "Al")
	require.NoError(t, err)

	accessToken, err := svc.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	claims, err := tokens.AccessClaimsFromToken(accessToken, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.Subject)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, "al@example.com", "secret1", "Al")
	require.NoError(t, err)

	// an access token is not refresh-capable
	token, err := svc.Refresh(ctx, res.AccessToken)
	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	token, err = svc.Refresh(ctx, "not-a-valid-jwt")
	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
