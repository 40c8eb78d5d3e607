package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillwave.dev/internal/store"
)

func TestMemStore_RoundTrip(t *testing.T) {
	t.Parallel()
	s := store.NewMemStore()

	_, ok := s.Get("quality-preset")
	assert.False(t, ok)

	require.NoError(t, s.Set("quality-preset", "high"))
	v, ok := s.Get("quality-preset")
	assert.True(t, ok)
	assert.Equal(t, "high", v)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("quality-preset", "low"))
	require.NoError(t, s.Set("reduced-motion", "true"))

	reopened, err := store.Open(path)
	require.NoError(t, err)

	v, ok := reopened.Get("quality-preset")
	assert.True(t, ok)
	assert.Equal(t, "low", v)
	v, ok = reopened.Get("reduced-motion")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	s, err := store.Open(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	_, ok := s.Get("anything")
	assert.False(t, ok)
}

func TestFileStore_CorruptFileErrors(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := store.Open(path)
	assert.Error(t, err)
}
