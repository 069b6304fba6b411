package api_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/service"
)

// mockUserService implements service.UserService for handler tests
type mockUserService struct {
	ListUsersFn func(ctx context.Context) ([]*domain.User, error)
	SignUpFn    func(ctx context.Context, name, email, password, imagePath string) (*service.AuthResult, error)
	LogInFn     func(ctx context.Context, email, password string) (*service.AuthResult, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return m.ListUsersFn(ctx)
}

func (m *mockUserService) SignUp(ctx context.Context, name, email, password, imagePath string) (*service.AuthResult, error) {
	return m.SignUpFn(ctx, name, email, password, imagePath)
}

func (m *mockUserService) LogIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return m.LogInFn(ctx, email, password)
}

// mockPlaceService implements service.PlaceService for handler tests
type mockPlaceService struct {
	GetPlaceFn          func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	ListPlacesByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	CreatePlaceFn       func(ctx context.Context, ownerID uuid.UUID, title, description, address string, latitude, longitude float64, imagePath string) (*domain.Place, error)
	UpdatePlaceFn       func(ctx context.Context, placeID, requesterID uuid.UUID, title, description string) (*domain.Place, error)
	DeletePlaceFn       func(ctx context.Context, placeID, requesterID uuid.UUID) error
}

func (m *mockPlaceService) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	return m.GetPlaceFn(ctx, placeID)
}

func (m *mockPlaceService) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return m.ListPlacesByOwnerFn(ctx, ownerID)
}

func (m *mockPlaceService) CreatePlace(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description, address string,
	latitude, longitude float64,
	imagePath string,
) (*domain.Place, error) {
	return m.CreatePlaceFn(ctx, ownerID, title, description, address, latitude, longitude, imagePath)
}

func (m *mockPlaceService) UpdatePlace(
	ctx context.Context,
	placeID, requesterID uuid.UUID,
	title, description string,
) (*domain.Place, error) {
	return m.UpdatePlaceFn(ctx, placeID, requesterID, title, description)
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	return m.DeletePlaceFn(ctx, placeID, requesterID)
}
