package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common place validation errors
var (
	ErrEmptyPlaceID        = errors.New("place ID cannot be empty")
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters long")
	ErrEmptyAddress        = errors.New("address cannot be empty")
	ErrEmptyOwnerID        = errors.New("owner ID cannot be empty")
)

// Place represents a geotagged place record created by a user.
// OwnerID always refers to an existing user whose PlaceIDs collection
// contains this place's ID; the two are written together inside a single
// transaction or not at all.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImagePath   string    `json:"image"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace creates a new Place owned by the given user.
// It generates a new UUID for the place ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewPlace(
	ownerID uuid.UUID,
	title, description, address string,
	latitude, longitude float64,
	imagePath string,
) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Address:     address,
		Latitude:    latitude,
		Longitude:   longitude,
		ImagePath:   imagePath,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
// Returns an error if any field fails validation.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaceID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}

	if len(p.Description) < 5 {
		return ErrDescriptionTooShort
	}

	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyAddress
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	return nil
}

// UpdateFields applies an edit to the place's mutable fields (title and
// description) and bumps the update timestamp. Returns an error if the new
// values fail validation; the place is left unchanged in that case.
func (p *Place) UpdateFields(title, description string) error {
	updated := *p
	updated.Title = title
	updated.Description = description

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*p = updated
	return nil
}

// IsOwnedBy reports whether the place belongs to the given user.
// Ownership comparisons always use the canonical UUID value.
func (p *Place) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}
