package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyring(t *testing.T) *Keyring {
	t.Helper()
	k, err := NewKeyring(filepath.Join(t.TempDir(), "auth", "token.json"))
	require.NoError(t, err)
	return k
}

func TestNewKeyring_EmptyPath(t *testing.T) {
	_, err := NewKeyring("")
	assert.Error(t, err)
}

func TestKeyring_SaveAndToken(t *testing.T) {
	k := newTestKeyring(t)

	require.NoError(t, k.Save("jwt-abc"))

	got, ok := k.Token()
	assert.True(t, ok)
	assert.Equal(t, "jwt-abc", got)
	assert.True(t, k.Has())
}

func TestKeyring_TokenMissing(t *testing.T) {
	k := newTestKeyring(t)

	got, ok := k.Token()
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.False(t, k.Has())
}

func TestKeyring_SaveEmptyToken(t *testing.T) {
	k := newTestKeyring(t)
	assert.Error(t, k.Save(""))
}

func TestKeyring_SaveOverwrites(t *testing.T) {
	k := newTestKeyring(t)

	require.NoError(t, k.Save("first"))
	require.NoError(t, k.Save("second"))

	got, ok := k.Token()
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestKeyring_FilePermissions(t *testing.T) {
	k := newTestKeyring(t)
	require.NoError(t, k.Save("jwt-abc"))

	info, err := os.Stat(k.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(k.Path()))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())
}

func TestKeyring_NoTempFileLeftBehind(t *testing.T) {
	k := newTestKeyring(t)
	require.NoError(t, k.Save("jwt-abc"))

	_, err := os.Stat(k.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestKeyring_ClearIdempotent(t *testing.T) {
	k := newTestKeyring(t)
	require.NoError(t, k.Save("jwt-abc"))

	require.NoError(t, k.Clear())
	assert.False(t, k.Has())

	// clearing again must not fail
	require.NoError(t, k.Clear())
}

func TestKeyring_CorruptFile(t *testing.T) {
	k := newTestKeyring(t)
	require.NoError(t, os.WriteFile(k.Path(), []byte("not json"), 0600))

	_, ok := k.Token()
	assert.False(t, ok)
}

func TestKeyring_ExternalClearObserved(t *testing.T) {
	k := newTestKeyring(t)
	require.NoError(t, k.Save("jwt-abc"))
	require.True(t, k.Has())

	// simulate another process removing the token file
	require.NoError(t, os.Remove(k.Path()))
	assert.False(t, k.Has())
}
