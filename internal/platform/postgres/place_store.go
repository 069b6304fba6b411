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

// PostgresPlaceStore implements the store.PlaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlaceStore creates a new PostgreSQL implementation of the
// PlaceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPlaceStore(db store.DBTX, logger *slog.Logger) *PostgresPlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlaceStore{
		db:     db,
		logger: logger.With(slog.String("component", "place_store")),
	}
}

// Ensure PostgresPlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// WithTx implements store.PlaceStore.WithTx
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlaceStore.Create
// It saves a new place to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the owner doesn't exist (foreign key
// violation).
func (s *PostgresPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO places (id, title, description, address, latitude, longitude, image_path, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Address,
		place.Latitude,
		place.Longitude,
		place.ImagePath,
		place.OwnerID,
		place.CreatedAt,
		place.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during place creation",
				slog.String("place_id", place.ID.String()),
				slog.String("owner_id", place.OwnerID.String()))
			return fmt.Errorf("%w: owner with ID %s not found",
				store.ErrInvalidEntity, place.OwnerID)
		}

		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()),
			slog.String("owner_id", place.OwnerID.String()))
		return store.NewStoreError("place", "create", "failed to insert place", err)
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID
// It retrieves a place by its unique ID.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, address, latitude, longitude, image_path, owner_id, created_at, updated_at
		FROM places
		WHERE id = $1
	`

	var place domain.Place
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Latitude,
		&place.Longitude,
		&place.ImagePath,
		&place.OwnerID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("place not found", slog.String("place_id", id.String()))
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, store.NewStoreError("place", "get", "failed to query place", err)
	}

	return &place, nil
}

// ListByOwner implements store.PlaceStore.ListByOwner
// It retrieves all places owned by the given user, newest first.
// Returns an empty slice if the user owns no places; absence is not an
// error here.
func (s *PostgresPlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, address, latitude, longitude, image_path, owner_id, created_at, updated_at
		FROM places
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to query places by owner",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, store.NewStoreError("place", "list_by_owner", "failed to query places", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var places []*domain.Place
	for rows.Next() {
		var place domain.Place
		err := rows.Scan(
			&place.ID,
			&place.Title,
			&place.Description,
			&place.Address,
			&place.Latitude,
			&place.Longitude,
			&place.ImagePath,
			&place.OwnerID,
			&place.CreatedAt,
			&place.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan place row", slog.String("error", err.Error()))
			return nil, err
		}
		places = append(places, &place)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no places found
	if places == nil {
		places = []*domain.Place{}
	}

	log.Debug("listed places by owner",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(places)))
	return places, nil
}

// Update implements store.PlaceStore.Update
// It persists the place's mutable fields.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during update",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE places
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		place.Title,
		place.Description,
		place.UpdatedAt,
		place.ID,
	)

	if err != nil {
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return store.NewStoreError("place", "update", "failed to update place", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("place not found for update",
			slog.String("place_id", place.ID.String()))
		return store.ErrPlaceNotFound
	}

	log.Info("place updated successfully",
		slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete
// It removes a place from the store by its ID. The reciprocal
// user_places row must be removed first, in the same transaction.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM places
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return store.NewStoreError("place", "delete", "failed to delete place", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("place not found for delete",
			slog.String("place_id", id.String()))
		return store.ErrPlaceNotFound
	}

	log.Info("place deleted successfully",
		slog.String("place_id", id.String()))
	return nil
}
