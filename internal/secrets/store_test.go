package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := FetchToken()
	require.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, StoreToken("TEST_AUTH_TOKEN_12345"))
	tok, err := FetchToken()
	require.NoError(t, err)
	require.Equal(t, "TEST_AUTH_TOKEN_12345", tok)

	// overwrite replaces the single entry
	require.NoError(t, StoreToken("second"))
	tok, err = FetchToken()
	require.NoError(t, err)
	require.Equal(t, "second", tok)

	require.NoError(t, DeleteToken())
	_, err = FetchToken()
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestTokenNotStoredInPlainText(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, StoreToken("supersecret"))
	raw, err := os.ReadFile(filepath.Join(dir, "finfolio", "credentials.json"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "supersecret")

	info, err := os.Stat(filepath.Join(dir, "finfolio", "credentials.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
