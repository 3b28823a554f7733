package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"papi/internal/errors"
)

// File persists each key as a JSON file under a data directory. It is the
// default backend and mirrors the single-browser-tab storage model: one writer,
// last write wins.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile creates the data directory if needed and returns a file-backed store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", errors.ErrStorageFailure, key, err)
	}
	return data, nil
}

// Set writes to a temp file and renames it into place so a crash mid-write
// never leaves a truncated value behind.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: temp %s: %v", errors.ErrStorageFailure, key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", errors.ErrStorageFailure, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", errors.ErrStorageFailure, key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %v", errors.ErrStorageFailure, key, err)
	}
	return nil
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %s: %v", errors.ErrStorageFailure, key, err)
	}
	return nil
}
