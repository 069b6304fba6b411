package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/api/shared"
	"github.com/placeshare/places-api/internal/service/auth"
)

// authFailedMessage is the single message returned for every failure mode
// of the gate. Callers cannot tell a missing header from a bad signature.
const authFailedMessage = "Authentication failed"

// AuthMiddleware provides token authentication for protected routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the user ID to the request context for authorized requests.
// CORS preflight requests pass through without a token. All failures get
// the same 403 response regardless of cause.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractBearerToken(r)
		if !ok {
			shared.RespondWithErrorAndLog(
				w,
				r,
				http.StatusForbidden,
				authFailedMessage,
				auth.ErrMissingToken,
				shared.WithElevatedLogLevel(),
			)
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(
				w,
				r,
				http.StatusForbidden,
				authFailedMessage,
				err,
				shared.WithElevatedLogLevel(),
			)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x"
// header. Returns false if the header is absent or malformed.
func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
