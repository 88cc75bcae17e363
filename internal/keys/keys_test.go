package keys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinledger/skinledger/internal/skinport"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envClientID, "")
	t.Setenv(envClientSecret, "")
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")

	want := skinport.Credentials{ClientID: "abc123", ClientSecret: "s3cr3t=="}
	require.NoError(t, Save(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, Save(path, skinport.Credentials{ClientID: "file-id", ClientSecret: "file-secret"}))

	t.Setenv(envClientID, "env-id")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", got.ClientID)
	assert.Equal(t, "file-secret", got.ClientSecret)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv(envClientID, "env-id")
	t.Setenv(envClientSecret, "env-secret")

	got, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, skinport.Credentials{ClientID: "env-id", ClientSecret: "env-secret"}, got)
}

func TestLoad_Missing(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_CLIENT_ID=only-id\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestSave_RejectsEmpty(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), ".env"), skinport.Credentials{ClientID: "id"})
	assert.ErrorIs(t, err, ErrMissing)
}
