package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/platform/filestore"
	"github.com/placeshare/places-api/internal/platform/logger"
	"github.com/placeshare/places-api/internal/store"
)

// PlaceService provides place-related operations. Create and Delete span
// the place store and the owner's reciprocal collection in the user store;
// both writes happen inside a single transaction or not at all.
type PlaceService interface {
	// GetPlace retrieves a place by its ID.
	// Returns ErrPlaceNotFound if it does not exist.
	GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)

	// ListPlacesByOwner retrieves all places owned by the given user.
	// A user with no places yields an empty slice, not an error.
	ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// CreatePlace creates a new place for the given owner and appends it
	// to the owner's place collection atomically.
	// Returns ErrUserNotFound if the owner does not exist.
	CreatePlace(
		ctx context.Context,
		ownerID uuid.UUID,
		title, description, address string,
		latitude, longitude float64,
		imagePath string,
	) (*domain.Place, error)

	// UpdatePlace applies title/description changes to a place owned by
	// the requester.
	// Returns ErrPlaceNotFound or ErrNotPlaceOwner as appropriate.
	UpdatePlace(
		ctx context.Context,
		placeID, requesterID uuid.UUID,
		title, description string,
	) (*domain.Place, error)

	// DeletePlace removes a place owned by the requester, removing it from
	// the owner's collection in the same transaction. The stored image is
	// cleaned up best-effort after the transaction commits.
	// Returns ErrPlaceNotFound or ErrNotPlaceOwner as appropriate.
	DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error
}

// placeServiceImpl implements the PlaceService interface
type placeServiceImpl struct {
	placeStore store.PlaceStore
	userStore  store.UserStore
	fileStore  filestore.FileStore
	db         *sql.DB
	logger     *slog.Logger
}

// NewPlaceService creates a new PlaceService.
// It returns an error if any of the required dependencies are nil.
func NewPlaceService(
	placeStore store.PlaceStore,
	userStore store.UserStore,
	fileStore filestore.FileStore,
	db *sql.DB,
	logger *slog.Logger,
) (PlaceService, error) {
	if placeStore == nil {
		return nil, &ServiceError{Service: "place", Operation: "create_service", Message: "placeStore cannot be nil"}
	}
	if userStore == nil {
		return nil, &ServiceError{Service: "place", Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if fileStore == nil {
		return nil, &ServiceError{Service: "place", Operation: "create_service", Message: "fileStore cannot be nil"}
	}
	if db == nil {
		return nil, &ServiceError{Service: "place", Operation: "create_service", Message: "db cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &placeServiceImpl{
		placeStore: placeStore,
		userStore:  userStore,
		fileStore:  fileStore,
		db:         db,
		logger:     logger.With("component", "place_service"),
	}, nil
}

// GetPlace retrieves a place by its ID
func (s *placeServiceImpl) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			log.Debug("place not found", "place_id", placeID)
			return nil, ErrPlaceNotFound
		}
		log.Error("failed to retrieve place",
			"error", err,
			"place_id", placeID)
		return nil, newServiceError("place", "get_place", "failed to retrieve place", err)
	}

	return place, nil
}

// ListPlacesByOwner retrieves all places owned by the given user.
// An empty result is a valid answer here; returning not-found for a user
// without places was considered and rejected.
func (s *placeServiceImpl) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	places, err := s.placeStore.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list places by owner",
			"error", err,
			"owner_id", ownerID)
		return nil, newServiceError("place", "list_places", "failed to list places", err)
	}

	return places, nil
}

// CreatePlace creates a new place and appends it to the owner's collection
// in a single transaction: either both writes commit or neither is
// visible.
func (s *placeServiceImpl) CreatePlace(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description, address string,
	latitude, longitude float64,
	imagePath string,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Resolve the owner first; a missing owner is the caller's mistake,
	// not a transaction failure.
	if _, err := s.userStore.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("owner not found for place creation", "owner_id", ownerID)
			return nil, ErrUserNotFound
		}
		log.Error("failed to resolve owner for place creation",
			"error", err,
			"owner_id", ownerID)
		return nil, newServiceError("place", "create_place", "failed to resolve owner", err)
	}

	place, err := domain.NewPlace(ownerID, title, description, address, latitude, longitude, imagePath)
	if err != nil {
		log.Warn("invalid place data",
			"error", err,
			"owner_id", ownerID)
		return nil, newServiceError("place", "create_place", "invalid place data", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlaceStore := s.placeStore.WithTx(tx)
		txUserStore := s.userStore.WithTx(tx)

		if err := txPlaceStore.Create(ctx, place); err != nil {
			return err
		}

		return txUserStore.AddPlace(ctx, ownerID, place.ID)
	})
	if err != nil {
		log.Error("place creation transaction failed",
			"error", err,
			"place_id", place.ID,
			"owner_id", ownerID)
		return nil, newServiceError("place", "create_place", "transaction failed", err)
	}

	log.Info("place created",
		"place_id", place.ID,
		"owner_id", ownerID)
	return place, nil
}

// UpdatePlace applies title/description changes to a place after verifying
// the requester owns it.
func (s *placeServiceImpl) UpdatePlace(
	ctx context.Context,
	placeID, requesterID uuid.UUID,
	title, description string,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			log.Debug("place not found for update", "place_id", placeID)
			return nil, ErrPlaceNotFound
		}
		log.Error("failed to retrieve place for update",
			"error", err,
			"place_id", placeID)
		return nil, newServiceError("place", "update_place", "failed to retrieve place", err)
	}

	if !place.IsOwnedBy(requesterID) {
		log.Warn("update attempted by non-owner",
			"place_id", placeID,
			"owner_id", place.OwnerID,
			"requester_id", requesterID)
		return nil, ErrNotPlaceOwner
	}

	if err := place.UpdateFields(title, description); err != nil {
		log.Warn("invalid place update",
			"error", err,
			"place_id", placeID)
		return nil, newServiceError("place", "update_place", "invalid place data", err)
	}

	if err := s.placeStore.Update(ctx, place); err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			return nil, ErrPlaceNotFound
		}
		log.Error("failed to persist place update",
			"error", err,
			"place_id", placeID)
		return nil, newServiceError("place", "update_place", "failed to persist update", err)
	}

	log.Info("place updated", "place_id", placeID)
	return place, nil
}

// DeletePlace removes a place and its entry in the owner's collection in a
// single transaction, then removes the stored image asynchronously.
// Image cleanup is outside the consistency contract: a failure there is
// logged and never surfaced to the caller.
func (s *placeServiceImpl) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			log.Debug("place not found for delete", "place_id", placeID)
			return ErrPlaceNotFound
		}
		log.Error("failed to retrieve place for delete",
			"error", err,
			"place_id", placeID)
		return newServiceError("place", "delete_place", "failed to retrieve place", err)
	}

	if !place.IsOwnedBy(requesterID) {
		log.Warn("delete attempted by non-owner",
			"place_id", placeID,
			"owner_id", place.OwnerID,
			"requester_id", requesterID)
		return ErrNotPlaceOwner
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlaceStore := s.placeStore.WithTx(tx)
		txUserStore := s.userStore.WithTx(tx)

		// The collection row references the place row, so it goes first.
		if err := txUserStore.RemovePlace(ctx, place.OwnerID, place.ID); err != nil {
			return err
		}

		return txPlaceStore.Delete(ctx, place.ID)
	})
	if err != nil {
		log.Error("place deletion transaction failed",
			"error", err,
			"place_id", placeID,
			"owner_id", place.OwnerID)
		return newServiceError("place", "delete_place", "transaction failed", err)
	}

	log.Info("place deleted",
		"place_id", placeID,
		"owner_id", place.OwnerID)

	if place.ImagePath != "" {
		go s.removeImage(place.ImagePath, placeID)
	}

	return nil
}

// removeImage deletes a place's stored image. Fire-and-forget: it runs
// after the delete transaction has committed and may race with process
// shutdown.
func (s *placeServiceImpl) removeImage(imagePath string, placeID uuid.UUID) {
	if err := s.fileStore.Remove(imagePath); err != nil {
		s.logger.Warn("failed to remove place image",
			"error", err,
			"place_id", placeID)
		return
	}

	s.logger.Debug("removed place image", "place_id", placeID)
}
