package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists the blob as a single JSON file on disk.
type FileBackend struct {
	path    string
	lastErr error
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Name() string {
	return "file"
}

func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			b.lastErr = nil
			return nil, nil
		}
		b.lastErr = err
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	b.lastErr = nil
	return data, nil
}

func (b *FileBackend) Save(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write never leaves a
	// truncated store behind.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	b.lastErr = nil
	return nil
}

func (b *FileBackend) Healthy() bool {
	return b.lastErr == nil
}

func (b *FileBackend) Close() error {
	return nil
}

// Path returns the file this backend writes to.
func (b *FileBackend) Path() string {
	return b.path
}
