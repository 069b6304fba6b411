package api

import (
	"time"

	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/service"
)

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePlaceRequest represents the request body for editing a place
type UpdatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// AuthResponse represents the response data for signup and login
type AuthResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Image    string   `json:"image,omitempty"`
	PlaceIDs []string `json:"places"`
}

// PlaceResponse represents the response data for a place
type PlaceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Image       string    `json:"image,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageResponse carries a status message with no other payload
type MessageResponse struct {
	Message string `json:"message"`
}

// authResultToResponse converts a service.AuthResult to an AuthResponse
func authResultToResponse(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		UserID: result.UserID.String(),
		Email:  result.Email,
		Token:  result.Token,
	}
}

// userToResponse converts a domain.User to a UserResponse
func userToResponse(user *domain.User) UserResponse {
	placeIDs := make([]string, 0, len(user.PlaceIDs))
	for _, id := range user.PlaceIDs {
		placeIDs = append(placeIDs, id.String())
	}

	return UserResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Image:    user.ImagePath,
		PlaceIDs: placeIDs,
	}
}

// placeToResponse converts a domain.Place to a PlaceResponse
func placeToResponse(place *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          place.ID.String(),
		Title:       place.Title,
		Description: place.Description,
		Address:     place.Address,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Image:       place.ImagePath,
		OwnerID:     place.OwnerID.String(),
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}
}

// placesToResponse converts a slice of places, always yielding a non-nil
// slice so empty results serialize as [] rather than null.
func placesToResponse(places []*domain.Place) []PlaceResponse {
	responses := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, placeToResponse(place))
	}
	return responses
}
