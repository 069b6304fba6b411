package mocks

import (
	"io"
	"sync"

	"github.com/placeshare/places-api/internal/platform/filestore"
)

// MockFileStore implements filestore.FileStore for testing
type MockFileStore struct {
	// Custom behavior functions
	SaveFn   func(r io.Reader, originalName string) (string, error)
	RemoveFn func(path string) error

	// Default response values
	SavedPath string
	Err       error

	// Call tracking for verification
	mu           sync.Mutex
	RemovedPaths []string
}

// Ensure MockFileStore implements filestore.FileStore
var _ filestore.FileStore = (*MockFileStore)(nil)

// Save implements the filestore.FileStore interface
func (m *MockFileStore) Save(r io.Reader, originalName string) (string, error) {
	if m.SaveFn != nil {
		return m.SaveFn(r, originalName)
	}
	return m.SavedPath, m.Err
}

// Remove implements the filestore.FileStore interface
func (m *MockFileStore) Remove(path string) error {
	m.mu.Lock()
	m.RemovedPaths = append(m.RemovedPaths, path)
	m.mu.Unlock()

	if m.RemoveFn != nil {
		return m.RemoveFn(path)
	}
	return m.Err
}

// Removed returns a snapshot of the paths passed to Remove, safe to read
// while background cleanup goroutines may still be running.
func (m *MockFileStore) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.RemovedPaths))
	copy(out, m.RemovedPaths)
	return out
}
