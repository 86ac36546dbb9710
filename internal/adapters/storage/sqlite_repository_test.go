package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tmlsync/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepositoryForHome(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestGet_Missing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrMetadataNotFound)
}

func TestSaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, domain.ProjectMetadata{
		Name:               "Cave A",
		ProjectID:          "12",
		RemoteCreationDate: created,
	}))

	got, err := repo.Get(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "Cave A", got.Name)
	assert.True(t, got.RemoteCreationDate.Equal(created))
	assert.Nil(t, got.LastDownloadedAt)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSave_UpsertKeepsTransferTimestamps(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	downloaded := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, domain.ProjectMetadata{Name: "Old", ProjectID: "12", LastDownloadedAt: &downloaded}))
	require.NoError(t, repo.MarkUploaded(ctx, "12", downloaded.Add(time.Hour)))
	require.NoError(t, repo.Save(ctx, domain.ProjectMetadata{Name: "Renamed", ProjectID: "12"}))

	got, err := repo.Get(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	require.NotNil(t, got.LastDownloadedAt)
	assert.True(t, got.LastDownloadedAt.Equal(downloaded))
	require.NotNil(t, got.LastUploadedAt)
	assert.True(t, got.LastUploadedAt.Equal(downloaded.Add(time.Hour)))
}

func TestMarkUploaded_MissingRecord(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.MarkUploaded(context.Background(), "ghost", time.Now())

	assert.ErrorIs(t, err, domain.ErrMetadataNotFound)
}

func TestDeleteAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.ProjectMetadata{Name: "A", ProjectID: "1"}))
	require.NoError(t, repo.Save(ctx, domain.ProjectMetadata{Name: "B", ProjectID: "2"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"), "deleting twice is fine")

	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ProjectID)
}
