package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/config"
	"github.com/placeshare/places-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) auth.TokenService {
	t.Helper()

	svc, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:                  secret,
		SignupTokenLifetimeMinutes: 60,
		LoginTokenLifetimeMinutes:  30,
		BcryptCost:                 4,
	})
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:                  "too-short",
		SignupTokenLifetimeMinutes: 60,
		LoginTokenLifetimeMinutes:  30,
	})
	assert.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "test-secret-key-thats-long-enough-for-hmac")
	ctx := context.Background()

	userID := uuid.New()
	email := "ada@example.com"

	token, err := svc.GenerateToken(ctx, userID, email, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenService_TokenLifetimeIsCallerControlled(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "test-secret-key-thats-long-enough-for-hmac")
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, uuid.New(), "ada@example.com", 30*time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "test-secret-key-thats-long-enough-for-hmac")
	ctx := context.Background()

	// Issue a token that expired well beyond the allowed clock skew.
	token, err := svc.GenerateToken(ctx, uuid.New(), "ada@example.com", -time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenService_WrongSigningKey(t *testing.T) {
	t.Parallel()

	issuer := newTestTokenService(t, "test-secret-key-thats-long-enough-for-hmac")
	verifier := newTestTokenService(t, "a-completely-different-secret-key-here!!")
	ctx := context.Background()

	token, err := issuer.GenerateToken(ctx, uuid.New(), "ada@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_MalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "test-secret-key-thats-long-enough-for-hmac")
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, err := svc.ValidateToken(ctx, token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}

func TestTokenService_RejectsTokenWithoutExpiry(t *testing.T) {
	t.Parallel()

	const secret = "test-secret-key-thats-long-enough-for-hmac"
	svc := newTestTokenService(t, secret)
	ctx := context.Background()

	// A token signed with the right key but carrying no exp claim must
	// still be rejected rather than treated as never-expiring.
	userID := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   userID.String(),
		"email": "ada@example.com",
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
