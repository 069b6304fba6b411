package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Custom behavior functions
	CreateFn      func(ctx context.Context, user *domain.User) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	ListFn        func(ctx context.Context) ([]*domain.User, error)
	AddPlaceFn    func(ctx context.Context, userID, placeID uuid.UUID) error
	RemovePlaceFn func(ctx context.Context, userID, placeID uuid.UUID) error
	WithTxFn      func(tx *sql.Tx) store.UserStore

	// Default response values
	User  *domain.User
	Users []*domain.User
	Err   error

	// Call tracking for verification
	mu               sync.Mutex
	CreateCalls      int
	AddPlaceCalls    []PlaceLink
	RemovePlaceCalls []PlaceLink
}

// PlaceLink records a user/place pairing passed to AddPlace or RemovePlace.
type PlaceLink struct {
	UserID  uuid.UUID
	PlaceID uuid.UUID
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

// List implements the store.UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, m.Err
}

// AddPlace implements the store.UserStore interface
func (m *MockUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	m.mu.Lock()
	m.AddPlaceCalls = append(m.AddPlaceCalls, PlaceLink{UserID: userID, PlaceID: placeID})
	m.mu.Unlock()

	if m.AddPlaceFn != nil {
		return m.AddPlaceFn(ctx, userID, placeID)
	}
	return m.Err
}

// RemovePlace implements the store.UserStore interface
func (m *MockUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	m.mu.Lock()
	m.RemovePlaceCalls = append(m.RemovePlaceCalls, PlaceLink{UserID: userID, PlaceID: placeID})
	m.mu.Unlock()

	if m.RemovePlaceFn != nil {
		return m.RemovePlaceFn(ctx, userID, placeID)
	}
	return m.Err
}

// WithTx implements the store.UserStore interface. By default the mock
// returns itself so transactional code paths exercise the same instance.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
