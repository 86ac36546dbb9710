package filestore

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tmlsync/internal/domain"
)

func newMemStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "/projects")
	require.NoError(t, err)
	return store, fs
}

func TestPath(t *testing.T) {
	store, _ := newMemStore(t)
	assert.Equal(t, "/projects/42.tml", store.Path("42"))
}

func TestStage_CommitReplacesFile(t *testing.T) {
	store, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, store.Path("42"), []byte("old"), 0o644))

	staged, err := store.Stage("42")
	require.NoError(t, err)
	_, err = staged.Write([]byte("new survey"))
	require.NoError(t, err)

	// Nothing visible before commit
	data, err := afero.ReadFile(fs, store.Path("42"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	require.NoError(t, staged.Commit())

	data, err = afero.ReadFile(fs, store.Path("42"))
	require.NoError(t, err)
	assert.Equal(t, "new survey", string(data))
	assertNoPartFiles(t, fs)
}

func TestStage_DiscardKeepsOriginal(t *testing.T) {
	store, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, store.Path("42"), []byte("old"), 0o644))

	staged, err := store.Stage("42")
	require.NoError(t, err)
	_, _ = staged.Write([]byte("half a fi"))
	require.NoError(t, staged.Discard())
	require.NoError(t, staged.Discard(), "discard is idempotent")

	data, err := afero.ReadFile(fs, store.Path("42"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assertNoPartFiles(t, fs)
}

func TestStage_CommitTwiceFails(t *testing.T) {
	store, _ := newMemStore(t)
	staged, err := store.Stage("1")
	require.NoError(t, err)

	require.NoError(t, staged.Commit())
	assert.Error(t, staged.Commit())
}

func TestOpen_MissingFile(t *testing.T) {
	store, _ := newMemStore(t)

	_, err := store.Open("nope")

	assert.ErrorIs(t, err, domain.ErrNoLocalFile)
}

func TestOpen_ReadsContent(t *testing.T) {
	store, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, store.Path("7"), []byte("abc"), 0o644))

	rc, err := store.Open("7")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestRemove(t *testing.T) {
	store, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, store.Path("7"), []byte("abc"), 0o644))

	require.NoError(t, store.Remove("7"))
	exists, err := store.Exists("7")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Remove("7"), "removing a missing file is fine")
}

func assertNoPartFiles(t *testing.T, fs afero.Fs) {
	t.Helper()
	matches, err := afero.Glob(fs, "/projects/.*.part")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
