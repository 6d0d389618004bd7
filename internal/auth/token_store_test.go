package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "tokens.json")
	store := NewFileTokenStore(path)

	require.NoError(t, store.Save("access", "refresh"))

	access, refresh, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "access", access)
	assert.Equal(t, "refresh", refresh)

	require.NoError(t, store.Clear())
	access, refresh, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestFileTokenStore_MissingFile(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "absent.json"))

	access, refresh, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	// Clearing a store that never saved is not an error.
	require.NoError(t, store.Clear())
}
