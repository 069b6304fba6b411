package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// Custom behavior functions
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID, email string, lifetime time.Duration) (string, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default response values
	Token  string
	Claims *auth.Claims
	Err    error
}

// Ensure MockTokenService implements auth.TokenService
var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	email string,
	lifetime time.Duration,
) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, email, lifetime)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return m.Claims, m.Err
}
