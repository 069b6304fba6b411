package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims represents the verified contents of a bearer token.
type Claims struct {
	// UserID is the identifier of the authenticated user
	UserID uuid.UUID

	// Email is the email the token was issued for
	Email string

	// Subject is the standard JWT subject claim (the user ID as a string)
	Subject string

	// IssuedAt is when the token was created
	IssuedAt time.Time

	// ExpiresAt is when the token stops being valid
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim)
	ID string
}

// TokenService issues and verifies the signed, time-limited bearer tokens
// used to authenticate requests. Token lifetime is a per-call policy: the
// user service issues longer-lived tokens at signup than at login.
type TokenService interface {
	// GenerateToken creates a signed token carrying the user's identity.
	// Returns the serialized token or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string, lifetime time.Duration) (string, error)

	// ValidateToken checks the token's signature and expiry and returns
	// its claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for anything else that fails verification.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
