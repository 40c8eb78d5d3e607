// Package store provides the persisted key-value preference store.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is a simple string key-value store for user preferences.
type Store interface {
	// Get returns the stored value for key, with ok=false when absent.
	Get(key string) (value string, ok bool)
	// Set persists a value for key.
	Set(key, value string) error
}

// MemStore is an in-memory Store, used in tests and as the fallback when no
// writable config directory exists.
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// FileStore persists preferences as a small YAML map. Reads come from the
// snapshot loaded at open time; every Set rewrites the file.
type FileStore struct {
	path   string
	values map[string]string
}

// Open loads a FileStore from path, creating parent directories as needed.
// A missing file is an empty store, not an error.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("store: parse %q: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// DefaultPath returns the per-user preference file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("store: no user config dir: %w", err)
	}
	return filepath.Join(dir, "stillwave", "preferences.yaml"), nil
}

func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.values[key] = value

	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("store: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %q: %w", s.path, err)
	}
	return nil
}
