// Package filestore stores uploaded images on the local filesystem and
// hands back stable relative paths that the rest of the application treats
// as opaque references.
package filestore

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore abstracts stored-file handling so services and handlers do not
// depend on the local-disk implementation.
type FileStore interface {
	// Save persists the contents of r and returns a stable path for later
	// retrieval. The original filename is only consulted for its extension.
	Save(r io.Reader, originalName string) (string, error)

	// Remove deletes the file at the given path. Used for best-effort
	// cleanup; callers log failures instead of propagating them.
	Remove(path string) error
}

// allowed upload extensions, matching the image types the web client sends
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// DiskStore is a FileStore backed by a directory on the local filesystem.
type DiskStore struct {
	dir    string
	logger *slog.Logger
}

// NewDiskStore creates a DiskStore rooted at dir, creating the directory
// if it does not exist.
func NewDiskStore(dir string, logger *slog.Logger) (*DiskStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &DiskStore{
		dir:    dir,
		logger: logger.With(slog.String("component", "file_store")),
	}, nil
}

// Ensure DiskStore implements FileStore
var _ FileStore = (*DiskStore)(nil)

// Save implements FileStore.Save
// Files are named by a fresh UUID plus the original extension, so stored
// paths never collide and never reflect user input.
func (s *DiskStore) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}

	path := filepath.Join(s.dir, uuid.New().String()+ext)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		// Half-written file is useless; clean it up before reporting.
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	s.logger.Debug("stored uploaded file", slog.String("path", path))
	return path, nil
}

// Remove implements FileStore.Remove
func (s *DiskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
