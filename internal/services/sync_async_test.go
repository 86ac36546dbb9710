package services

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/ports"
)

func newAsyncFixture(t *testing.T) (*syncFixture, *AsyncSyncService) {
	t.Helper()
	f := newSyncFixture(t)
	pool := async.NewPool(2, 8)
	t.Cleanup(func() { _ = pool.Shutdown(context.Background()) })
	return f, NewAsyncSyncService(context.Background(), pool, f.svc)
}

func TestAsyncSyncService_Authenticate(t *testing.T) {
	f, svc := newAsyncFixture(t)
	f.remote.EXPECT().AuthenticateWithToken(mock.Anything, "https://repo.example.com", validToken).
		Return(validToken, nil)

	_, err := svc.Authenticate(domain.LoginRequest{ServerAddress: "repo.example.com", Token: validToken}).
		Wait(context.Background())

	require.NoError(t, err)
	assert.True(t, f.svc.IsAuthenticated())
}

func TestAsyncSyncService_ListAndCreate(t *testing.T) {
	f, svc := newAsyncFixture(t)
	creds := f.authenticate()
	input := domain.NewProject{Name: "Cave", Description: "d", CountryCode: "FR"}
	f.remote.EXPECT().ListProjects(mock.Anything, creds).
		Return([]domain.Project{{ID: "1", Name: "Cave"}}, nil)
	f.remote.EXPECT().CreateProject(mock.Anything, creds, input).
		Return(&domain.Project{ID: "2", Name: "Cave"}, nil)
	f.metadata.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	projects, err := svc.ListProjects().Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	created, err := svc.CreateProject(input).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)
}

func TestAsyncSyncService_TransferAndLock(t *testing.T) {
	f, svc := newAsyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "3", Name: "Cave", Permission: domain.PermissionAdmin}

	f.remote.EXPECT().DownloadProject(mock.Anything, creds, "3", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Credentials, _ string, dst io.Writer) (ports.DownloadStatus, error) {
			_, err := dst.Write([]byte("survey"))
			return ports.DownloadOK, err
		})
	f.metadata.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	f.remote.EXPECT().AcquireMutex(mock.Anything, creds, "3").Return(true, nil)
	f.remote.EXPECT().UploadProject(mock.Anything, creds, "3", "msg", mock.Anything).Return(nil)
	f.metadata.EXPECT().MarkUploaded(mock.Anything, "3", mock.Anything).Return(nil)
	f.remote.EXPECT().ReleaseMutex(mock.Anything, creds, "3").Return(true, nil)

	result, err := svc.DownloadProject(p).Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Exists)

	held, err := svc.AcquireOrRefreshProjectMutex(p).Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, held)

	_, err = svc.UploadProject("msg", p).Wait(context.Background())
	require.NoError(t, err)

	released, err := svc.ReleaseProjectMutex(p).Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, released)
}

func TestAsyncSyncService_FailureReachesFuture(t *testing.T) {
	_, svc := newAsyncFixture(t)

	_, err := svc.ListProjects().Wait(context.Background())

	assert.ErrorIs(t, err, errclass.Auth)
}
