package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "nested", DismissedKey))

	assert.False(t, store.Dismissed(), "absence means never dismissed")

	require.NoError(t, store.SetDismissed())
	assert.True(t, store.Dismissed())

	data, err := os.ReadFile(filepath.Join(dir, "nested", DismissedKey))
	require.NoError(t, err)
	assert.Equal(t, "true", string(data))
}

func TestFileStoreIgnoresOtherValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DismissedKey)
	require.NoError(t, os.WriteFile(path, []byte("false"), 0o644))

	store := NewFileStore(path)
	assert.False(t, store.Dismissed())
}

func TestDirStoreIsolatesClients(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	a := store.Client("client_a")
	b := store.Client("client_b")

	require.NoError(t, a.SetDismissed())

	assert.True(t, a.Dismissed())
	assert.False(t, b.Dismissed())
}
