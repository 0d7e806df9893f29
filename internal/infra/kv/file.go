package kv

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore keeps each key in its own file under a data directory, the
// closest server-side analog to per-key device storage. Writes go through
// a temp file and rename so a crash never leaves a half-written value.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "failed to create storage directory %s", dir)
	}

	return &FileStore{dir: dir}, nil
}

// path maps a key to its backing file. Keys are escaped so arbitrary key
// names cannot traverse outside the data directory.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}

// Get retrieves the value for key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to read key %s", key)
	}

	return string(data), true, nil
}

// Set writes the value for key atomically.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(s.dir, url.PathEscape(key)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for key %s", key)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to write key %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to close temp file for key %s", key)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to replace key %s", key)
	}

	return nil
}

// Remove deletes the key.
func (s *FileStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove key %s", key)
	}

	return nil
}
