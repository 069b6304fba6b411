package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/platform/logger"
	"github.com/placeshare/places-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
//
// The user's ordered owned-place collection lives in the user_places
// table; AddPlace and RemovePlace maintain it and are meant to run in the
// same transaction as the corresponding place write.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// It saves a new user to the database, handling domain validation.
// Returns store.ErrEmailExists if the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if user.HashedPassword == "" {
		log.Warn("attempted to create user without hashed password",
			slog.String("user_id", user.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO users (id, name, email, hashed_password, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.ImagePath,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "failed to insert user", err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// It retrieves a user by their unique ID, including the ordered
// owned-place collection.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, image_path, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.ImagePath,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, store.NewStoreError("user", "get", "failed to query user", err)
	}

	user.PlaceIDs, err = s.placeIDs(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user place collection",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if no user has the given email.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, image_path, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.ImagePath,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get_by_email", "failed to query user", err)
	}

	user.PlaceIDs, err = s.placeIDs(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user place collection",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	return &user, nil
}

// List implements store.UserStore.List
// It retrieves all users with their owned-place collections.
// Returns an empty slice if the store has no users.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, image_path, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "list", "failed to query users", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []*domain.User
	byID := make(map[uuid.UUID]*domain.User)
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.HashedPassword,
			&user.ImagePath,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		user.PlaceIDs = []uuid.UUID{}
		users = append(users, &user)
		byID[user.ID] = &user
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.fillPlaceIDs(ctx, byID); err != nil {
		log.Error("failed to load place collections", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no users found
	if users == nil {
		users = []*domain.User{}
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	return users, nil
}

// AddPlace implements store.UserStore.AddPlace
// It appends a place ID to the user's owned-place collection. The position
// column is a bigserial, so concurrent appends order by insertion and
// never overwrite one another.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_places (user_id, place_id)
		VALUES ($1, $2)
	`
	_, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Debug("foreign key violation adding place to user collection",
				slog.String("user_id", userID.String()),
				slog.String("place_id", placeID.String()))
			return store.ErrUserNotFound
		}

		log.Error("failed to add place to user collection",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return store.NewStoreError("user", "add_place", "failed to insert collection row", err)
	}

	return nil
}

// RemovePlace implements store.UserStore.RemovePlace
// Removing an ID that is not in the collection is not an error; the
// reciprocal delete of the place row is what reports absence.
func (s *PostgresUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM user_places
		WHERE user_id = $1 AND place_id = $2
	`
	_, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		log.Error("failed to remove place from user collection",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return store.NewStoreError("user", "remove_place", "failed to delete collection row", err)
	}

	return nil
}

// placeIDs loads the ordered owned-place collection for a single user.
func (s *PostgresUserStore) placeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT place_id
		FROM user_places
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// fillPlaceIDs loads the owned-place collections for a batch of users in
// one query.
func (s *PostgresUserStore) fillPlaceIDs(ctx context.Context, users map[uuid.UUID]*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	query := `
		SELECT user_id, place_id
		FROM user_places
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		var userID, placeID uuid.UUID
		if err := rows.Scan(&userID, &placeID); err != nil {
			return err
		}
		if user, ok := users[userID]; ok {
			user.PlaceIDs = append(user.PlaceIDs, placeID)
		}
	}

	return rows.Err()
}
