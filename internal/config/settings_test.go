package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLoadSettingsFrom_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultMetadataTimeout, settings.MetadataTimeout())
	assert.Equal(t, DefaultTransferTimeout, settings.TransferTimeout())
	assert.Equal(t, DefaultWorkers, settings.WorkerCount())
}

func TestLoadSettingsFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0600))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveSettingsTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home", "settings.json")
	settings := &Settings{
		Email:                  "caver@example.com",
		ServerAddress:          "https://repo.example.com",
		Token:                  "0123456789abcdef0123456789abcdef01234567",
		MetadataTimeoutSeconds: intPtr(10),
		TransferTimeoutSeconds: intPtr(120),
		Workers:                intPtr(2),
	}

	require.NoError(t, SaveSettingsTo(path, settings))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, settings.Token, loaded.Token)
	assert.Equal(t, settings.ServerAddress, loaded.ServerAddress)
	assert.Equal(t, 10*time.Second, loaded.MetadataTimeout())
	assert.Equal(t, 2*time.Minute, loaded.TransferTimeout())
	assert.Equal(t, 2, loaded.WorkerCount())
	assert.NoFileExists(t, path+".tmp")
}

func TestProjectsRoot(t *testing.T) {
	t.Setenv("TMLSYNC_HOME", "/tmp/tmlsync-home")

	assert.Equal(t, filepath.Join("/tmp/tmlsync-home", "projects"), (&Settings{}).ProjectsRoot())
	assert.Equal(t, "/data/tml", (&Settings{ProjectsDir: "/data/tml"}).ProjectsRoot())
}

func TestSettingsSchema_ListsFields(t *testing.T) {
	data, err := SettingsSchema()

	require.NoError(t, err)
	assert.Contains(t, string(data), `"server_address"`)
	assert.Contains(t, string(data), `"transfer_timeout_seconds"`)
}
