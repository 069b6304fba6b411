package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed the
	// password already; only HashedPassword is persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, including the ordered
	// owned-place collection.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves all users, each with their owned-place collection.
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]*domain.User, error)

	// AddPlace appends a place ID to the user's owned-place collection.
	// Intended to run inside the same transaction that persists the place.
	// Returns ErrUserNotFound if the user does not exist.
	AddPlace(ctx context.Context, userID, placeID uuid.UUID) error

	// RemovePlace removes a place ID from the user's owned-place
	// collection. Intended to run inside the same transaction that deletes
	// the place. Removing an absent ID is not an error.
	RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
