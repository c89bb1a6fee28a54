package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	tok := gofakeit.UUID()

	s := New(NewFileStore(path))
	assert.False(t, s.Authenticated())
	require.NoError(t, s.Save(tok))

	// a second store over the same file sees the token
	other := New(NewFileStore(path))
	assert.Equal(t, tok, other.Token())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), TokenKey)

	require.NoError(t, other.Clear())
	assert.False(t, s.Authenticated())
	require.NoError(t, other.Clear())
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_token: [unclosed"), 0o600))

	fs := NewFileStore(path)
	_, err := fs.Get(TokenKey)
	assert.Error(t, err)
	assert.Equal(t, "", New(fs).Token())
}

func TestMemoryStore(t *testing.T) {
	s := New(NewMemoryStore())
	require.NoError(t, s.Save("abc"))
	assert.True(t, s.Authenticated())
	require.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token())
}
