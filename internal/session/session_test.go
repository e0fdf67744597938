package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.yaml"))

	sess := &Session{UserID: 42, Username: "alex", Email: "a@b.c"}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.yaml"))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestLoadInvalidUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_id: 0\n"), 0600))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.yaml"))

	// Clearing a missing session is not an error.
	require.NoError(t, store.Clear())

	require.NoError(t, store.Save(&Session{UserID: 42}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.Error(t, err)
}
