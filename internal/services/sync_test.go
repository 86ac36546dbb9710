package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tmlsync/internal/adapters/filestore"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/ports"
	portsmocks "github.com/renato0307/tmlsync/internal/ports/mocks"
)

const validToken = "0123456789abcdef0123456789abcdef01234567"

type syncFixture struct {
	fs       afero.Fs
	files    *filestore.Store
	metadata *portsmocks.MockProjectMetadataRepository
	remote   *portsmocks.MockRemoteRepository
	session  *domain.Session
	svc      *SyncService
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	files, err := filestore.NewStore(fs, "/projects")
	require.NoError(t, err)

	f := &syncFixture{
		fs:       fs,
		files:    files,
		metadata: portsmocks.NewMockProjectMetadataRepository(t),
		remote:   portsmocks.NewMockRemoteRepository(t),
		session:  domain.NewSession(),
	}
	f.svc = NewSyncService(f.session, f.remote, f.files, f.metadata, Timeouts{})
	return f
}

func (f *syncFixture) authenticate() domain.Credentials {
	creds := domain.Credentials{ServerAddress: "https://repo.example.com", Token: validToken}
	f.session.Set(creds)
	return creds
}

func (f *syncFixture) writeLocal(t *testing.T, id, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, f.files.Path(id), []byte(content), 0o644))
}

func (f *syncFixture) localExists(t *testing.T, id string) bool {
	t.Helper()
	exists, err := f.files.Exists(id)
	require.NoError(t, err)
	return exists
}

func TestAuthenticate_Token(t *testing.T) {
	f := newSyncFixture(t)
	f.remote.EXPECT().AuthenticateWithToken(mock.Anything, "http://localhost:8000", validToken).
		Return(validToken, nil)

	err := f.svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:         "ignored@example.com",
		ServerAddress: "localhost:8000",
		Token:         validToken,
	})

	require.NoError(t, err)
	creds := f.svc.Credentials()
	assert.Equal(t, "http://localhost:8000", creds.ServerAddress)
	assert.Equal(t, validToken, creds.Token)
}

func TestAuthenticate_Password(t *testing.T) {
	f := newSyncFixture(t)
	f.remote.EXPECT().AuthenticateWithPassword(mock.Anything, "https://repo.example.com", "ada@example.com", "secret").
		Return("issued-token", nil)

	err := f.svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:         " ada@example.com ",
		Password:      "secret",
		ServerAddress: "repo.example.com",
	})

	require.NoError(t, err)
	assert.True(t, f.svc.IsAuthenticated())
}

func TestAuthenticate_InvalidTokenMakesNoNetworkCall(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()

	err := f.svc.Authenticate(context.Background(), domain.LoginRequest{
		ServerAddress: "repo.example.com",
		Token:         validToken[:39],
	})

	assert.ErrorIs(t, err, errclass.Validation)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.False(t, f.svc.IsAuthenticated())
	assert.Equal(t, domain.Credentials{}, f.svc.Credentials())
}

func TestAuthenticate_FailureClearsSession(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()
	f.remote.EXPECT().AuthenticateWithPassword(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errclass.New(errclass.KindAuth, "authenticate", "Invalid credentials.", nil))

	err := f.svc.Authenticate(context.Background(), domain.LoginRequest{
		Email:         "ada@example.com",
		Password:      "wrong",
		ServerAddress: "repo.example.com",
	})

	assert.ErrorIs(t, err, errclass.Auth)
	assert.False(t, f.svc.IsAuthenticated())
	assert.Equal(t, domain.Credentials{}, f.session.Snapshot())
}

func TestLogout_IsAlwaysSafe(t *testing.T) {
	f := newSyncFixture(t)
	f.svc.Logout()
	f.authenticate()
	f.svc.Logout()

	assert.False(t, f.svc.IsAuthenticated())
}

func TestOperations_RequireAuthentication(t *testing.T) {
	f := newSyncFixture(t)
	p := &domain.Project{ID: "1", Permission: domain.PermissionAdmin}
	ctx := context.Background()

	_, err := f.svc.ListProjects(ctx)
	assert.ErrorIs(t, err, errclass.Auth)
	_, err = f.svc.CreateProject(ctx, domain.NewProject{Name: "n", Description: "d", CountryCode: "FR"})
	assert.ErrorIs(t, err, errclass.Auth)
	_, err = f.svc.DownloadProject(ctx, p)
	assert.ErrorIs(t, err, errclass.Auth)
	assert.ErrorIs(t, f.svc.UploadProject(ctx, "msg", p), errclass.Auth)
	_, err = f.svc.AcquireOrRefreshProjectMutex(ctx, p)
	assert.ErrorIs(t, err, errclass.Auth)
	_, err = f.svc.ReleaseProjectMutex(ctx, p)
	assert.ErrorIs(t, err, errclass.Auth)
}

func TestListProjects_ServerErrorKeepsSession(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	f.remote.EXPECT().ListProjects(mock.Anything, creds).
		Return(nil, errclass.FromStatus("list projects", 500, "", "boom"))

	_, err := f.svc.ListProjects(context.Background())

	assert.ErrorIs(t, err, errclass.Server)
	assert.True(t, errclass.Retryable(err))
	assert.True(t, f.svc.IsAuthenticated())
}

func TestListProjects_Timeout(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	f.svc.timeouts.Metadata = 10 * time.Millisecond
	f.remote.EXPECT().ListProjects(mock.Anything, creds).
		RunAndReturn(func(ctx context.Context, _ domain.Credentials) ([]domain.Project, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := f.svc.ListProjects(context.Background())

	assert.ErrorIs(t, err, errclass.Timeout)
}

func TestCreateProject_ValidatesBeforeNetwork(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()

	_, err := f.svc.CreateProject(context.Background(), domain.NewProject{Name: "n", CountryCode: "FR"})

	assert.ErrorIs(t, err, errclass.Validation)
}

func TestCreateProject_RecordsIdentity(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	input := domain.NewProject{Name: "Cave", Description: "d", CountryCode: "FR"}
	created := &domain.Project{ID: "77", Name: "Cave", Permission: domain.PermissionAdmin}
	f.remote.EXPECT().CreateProject(mock.Anything, creds, input).Return(created, nil)
	f.metadata.EXPECT().Save(mock.Anything, mock.MatchedBy(func(m domain.ProjectMetadata) bool {
		return m.ProjectID == "77" && m.Name == "Cave"
	})).Return(nil)

	got, err := f.svc.CreateProject(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "77", got.ID)
}

func TestDownloadProject_ReplacesLocalFile(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "5", Name: "Cave", Permission: domain.PermissionAdmin}
	f.writeLocal(t, "5", "stale")

	f.remote.EXPECT().DownloadProject(mock.Anything, creds, "5", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Credentials, _ string, dst io.Writer) (ports.DownloadStatus, error) {
			_, err := dst.Write([]byte("fresh survey"))
			return ports.DownloadOK, err
		})
	f.metadata.EXPECT().Save(mock.Anything, mock.MatchedBy(func(m domain.ProjectMetadata) bool {
		return m.ProjectID == "5" && m.LastDownloadedAt != nil
	})).Return(nil)

	result, err := f.svc.DownloadProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.Exists)
	assert.Equal(t, "/projects/5.tml", result.Path)
	data, err := afero.ReadFile(f.fs, result.Path)
	require.NoError(t, err)
	assert.Equal(t, "fresh survey", string(data))
}

func TestDownloadProject_FailureLeavesOldFile(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "5", Permission: domain.PermissionAdmin}
	f.writeLocal(t, "5", "previous")

	f.remote.EXPECT().DownloadProject(mock.Anything, creds, "5", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Credentials, _ string, dst io.Writer) (ports.DownloadStatus, error) {
			_, _ = dst.Write([]byte("half"))
			return ports.DownloadOK, errclass.New(errclass.KindNetworkUnreachable, "download project", "reset", nil)
		})

	_, err := f.svc.DownloadProject(context.Background(), p)

	assert.ErrorIs(t, err, errclass.NetworkUnreachable)
	data, readErr := afero.ReadFile(f.fs, f.files.Path("5"))
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data))
}

func TestDownloadProject_LocalFileFailures(t *testing.T) {
	diskFull := errors.New("no space left on device")

	tests := []struct {
		name  string
		setup func(t *testing.T, files *portsmocks.MockProjectFileStore, remote *portsmocks.MockRemoteRepository, creds domain.Credentials)
	}{
		{
			name: "stage fails before any network call",
			setup: func(_ *testing.T, files *portsmocks.MockProjectFileStore, _ *portsmocks.MockRemoteRepository, _ domain.Credentials) {
				files.EXPECT().Stage("5").Return(nil, diskFull)
			},
		},
		{
			name: "commit fails after the transfer",
			setup: func(t *testing.T, files *portsmocks.MockProjectFileStore, remote *portsmocks.MockRemoteRepository, creds domain.Credentials) {
				staged := portsmocks.NewMockStagedFile(t)
				staged.EXPECT().Commit().Return(diskFull)
				files.EXPECT().Stage("5").Return(staged, nil)
				files.EXPECT().Path("5").Return("/projects/5.tml")
				remote.EXPECT().DownloadProject(mock.Anything, creds, "5", staged).Return(ports.DownloadOK, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := portsmocks.NewMockProjectFileStore(t)
			metadata := portsmocks.NewMockProjectMetadataRepository(t)
			remote := portsmocks.NewMockRemoteRepository(t)
			session := domain.NewSession()
			creds := domain.Credentials{ServerAddress: "https://repo.example.com", Token: validToken}
			session.Set(creds)
			tt.setup(t, files, remote, creds)
			svc := NewSyncService(session, remote, files, metadata, Timeouts{})

			result, err := svc.DownloadProject(context.Background(), &domain.Project{ID: "5"})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, diskFull)
			assert.Equal(t, errclass.KindUnknown, errclass.KindOf(err))
		})
	}
}

func TestDownloadProject_NotFoundAndEmptyRemoveStaleFile(t *testing.T) {
	tests := []struct {
		name      string
		status    ports.DownloadStatus
		wantEmpty bool
	}{
		{"not found", ports.DownloadNotFound, false},
		{"empty", ports.DownloadEmpty, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)
			creds := f.authenticate()
			p := &domain.Project{ID: "9", Permission: domain.PermissionAdmin}
			f.writeLocal(t, "9", "stale")

			f.remote.EXPECT().DownloadProject(mock.Anything, creds, "9", mock.Anything).Return(tt.status, nil)
			f.metadata.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

			result, err := f.svc.DownloadProject(context.Background(), p)

			require.NoError(t, err)
			assert.False(t, result.Exists)
			assert.Equal(t, tt.wantEmpty, result.Empty)
			assert.Equal(t, "/projects/9.tml", result.Path)
			assert.False(t, f.localExists(t, "9"))
		})
	}
}

func TestUploadProject_RejectsBlankMessageBeforeNetwork(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()
	p := &domain.Project{ID: "1", Permission: domain.PermissionAdmin}
	f.writeLocal(t, "1", "data")

	err := f.svc.UploadProject(context.Background(), "   ", p)

	assert.ErrorIs(t, err, errclass.Validation)
}

func TestUploadProject_RejectsReadOnly(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()
	p := &domain.Project{ID: "1", Permission: domain.PermissionReadOnly}

	err := f.svc.UploadProject(context.Background(), "msg", p)

	assert.ErrorIs(t, err, domain.ErrReadOnlyProject)
}

func TestUploadProject_RequiresLocalFile(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()
	p := &domain.Project{ID: "1", Permission: domain.PermissionAdmin}

	err := f.svc.UploadProject(context.Background(), "msg", p)

	assert.ErrorIs(t, err, domain.ErrNoLocalFile)
}

func TestUploadProject_RefreshesLockFirst(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "1", Permission: domain.PermissionReadAndWrite}
	f.writeLocal(t, "1", "survey v2")

	var order []string
	f.remote.EXPECT().AcquireMutex(mock.Anything, creds, "1").
		Run(func(context.Context, domain.Credentials, string) { order = append(order, "acquire") }).
		Return(true, nil)
	f.remote.EXPECT().UploadProject(mock.Anything, creds, "1", "north passage", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Credentials, _, _ string, artifact io.Reader) error {
			order = append(order, "upload")
			data, err := io.ReadAll(artifact)
			require.NoError(t, err)
			assert.Equal(t, "survey v2", string(data))
			return nil
		})
	f.metadata.EXPECT().MarkUploaded(mock.Anything, "1", mock.Anything).Return(nil)

	err := f.svc.UploadProject(context.Background(), " north passage ", p)

	require.NoError(t, err)
	assert.Equal(t, []string{"acquire", "upload"}, order)
}

func TestUploadProject_LockNotHeld(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "1", Permission: domain.PermissionAdmin}
	f.writeLocal(t, "1", "data")
	f.remote.EXPECT().AcquireMutex(mock.Anything, creds, "1").Return(false, nil)

	err := f.svc.UploadProject(context.Background(), "msg", p)

	assert.ErrorIs(t, err, domain.ErrLockNotHeld)
	f.remote.AssertNotCalled(t, "UploadProject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadProject_CreatesMissingMetadata(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "1", Permission: domain.PermissionAdmin}
	f.writeLocal(t, "1", "data")
	f.remote.EXPECT().AcquireMutex(mock.Anything, creds, "1").Return(true, nil)
	f.remote.EXPECT().UploadProject(mock.Anything, creds, "1", "msg", mock.Anything).Return(nil)
	f.metadata.EXPECT().MarkUploaded(mock.Anything, "1", mock.Anything).Return(domain.ErrMetadataNotFound)
	f.metadata.EXPECT().Save(mock.Anything, mock.MatchedBy(func(m domain.ProjectMetadata) bool {
		return m.LastUploadedAt != nil
	})).Return(nil)

	require.NoError(t, f.svc.UploadProject(context.Background(), "msg", p))
}

func TestAcquireOrRefresh_ReadOnlyNeverCallsServer(t *testing.T) {
	f := newSyncFixture(t)
	f.authenticate()

	held, err := f.svc.AcquireOrRefreshProjectMutex(context.Background(),
		&domain.Project{ID: "1", Permission: domain.PermissionReadOnly})

	require.NoError(t, err)
	assert.False(t, held)
}

func TestAcquireOrRefresh_HeldByOtherIsFalse(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	f.remote.EXPECT().AcquireMutex(mock.Anything, creds, "1").Return(false, nil)

	held, err := f.svc.AcquireOrRefreshProjectMutex(context.Background(),
		&domain.Project{ID: "1", Permission: domain.PermissionAdmin})

	require.NoError(t, err)
	assert.False(t, held)
}

func TestReconcileMetadata(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{ID: "3", Name: "Cave", CreationDate: created, Permission: domain.PermissionAdmin}

	t.Run("new", func(t *testing.T) {
		f := newSyncFixture(t)
		f.metadata.EXPECT().Get(mock.Anything, "3").Return(nil, domain.ErrMetadataNotFound)
		f.metadata.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

		status, err := f.svc.ReconcileMetadata(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, domain.MetadataNew, status)
	})

	t.Run("mismatch discards local file", func(t *testing.T) {
		f := newSyncFixture(t)
		f.writeLocal(t, "3", "other project's survey")
		f.metadata.EXPECT().Get(mock.Anything, "3").Return(&domain.ProjectMetadata{
			ProjectID:          "3",
			RemoteCreationDate: created.Add(-time.Hour),
		}, nil)
		f.metadata.EXPECT().Delete(mock.Anything, "3").Return(nil)
		f.metadata.EXPECT().Save(mock.Anything, mock.MatchedBy(func(m domain.ProjectMetadata) bool {
			return m.RemoteCreationDate.Equal(created)
		})).Return(nil)

		status, err := f.svc.ReconcileMetadata(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, domain.MetadataMismatch, status)
		assert.False(t, f.localExists(t, "3"))
	})

	t.Run("read failure", func(t *testing.T) {
		f := newSyncFixture(t)
		f.metadata.EXPECT().Get(mock.Anything, "3").Return(nil, errors.New("database is locked"))

		_, err := f.svc.ReconcileMetadata(context.Background(), p)

		assert.ErrorContains(t, err, "database is locked")
	})
}

func TestUploadThenDownload_RoundTrip(t *testing.T) {
	f := newSyncFixture(t)
	creds := f.authenticate()
	p := &domain.Project{ID: "rt", Permission: domain.PermissionAdmin}
	original := []byte{0x00, 0xff, 'T', 'M', 'L', '\r', '\n'}
	f.writeLocal(t, "rt", string(original))

	var remoteCopy bytes.Buffer
	f.remote.EXPECT().AcquireMutex(mock.Anything, creds, "rt").Return(true, nil)
	f.remote.EXPECT().UploadProject(mock.Anything, creds, "rt", "msg", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Credentials, _, _ string, artifact io.Reader) error {
			_, err := io.Copy(&remoteCopy, artifact)
			return err
		})
	f.remote.EXPECT().DownloadProject(mock.Anything, creds, "rt", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Credentials, _ string, dst io.Writer) (ports.DownloadStatus, error) {
			_, err := dst.Write(remoteCopy.Bytes())
			return ports.DownloadOK, err
		})
	f.metadata.EXPECT().MarkUploaded(mock.Anything, "rt", mock.Anything).Return(nil)
	f.metadata.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.svc.UploadProject(context.Background(), "msg", p))
	require.NoError(t, afero.WriteFile(f.fs, f.files.Path("rt"), []byte("clobbered"), 0o644))
	_, err := f.svc.DownloadProject(context.Background(), p)
	require.NoError(t, err)

	data, err := afero.ReadFile(f.fs, f.files.Path("rt"))
	require.NoError(t, err)
	assert.Equal(t, original, data)
}
