package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/store"
)

// MockPlaceStore implements store.PlaceStore for testing
type MockPlaceStore struct {
	// Custom behavior functions
	CreateFn      func(ctx context.Context, place *domain.Place) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	UpdateFn      func(ctx context.Context, place *domain.Place) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	WithTxFn      func(tx *sql.Tx) store.PlaceStore

	// Default response values
	Place  *domain.Place
	Places []*domain.Place
	Err    error

	// Call tracking for verification
	mu          sync.Mutex
	CreateCalls int
	UpdateCalls int
	DeleteCalls []uuid.UUID
}

// Ensure MockPlaceStore implements store.PlaceStore
var _ store.PlaceStore = (*MockPlaceStore)(nil)

// Create implements the store.PlaceStore interface
func (m *MockPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, place)
	}
	return m.Err
}

// GetByID implements the store.PlaceStore interface
func (m *MockPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Place, m.Err
}

// ListByOwner implements the store.PlaceStore interface
func (m *MockPlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return m.Places, m.Err
}

// Update implements the store.PlaceStore interface
func (m *MockPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, place)
	}
	return m.Err
}

// Delete implements the store.PlaceStore interface
func (m *MockPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements the store.PlaceStore interface. By default the mock
// returns itself so transactional code paths exercise the same instance.
func (m *MockPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
