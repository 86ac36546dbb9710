package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	portsmocks "github.com/renato0307/tmlsync/internal/ports/mocks"
	"github.com/renato0307/tmlsync/internal/services"
	servicesmocks "github.com/renato0307/tmlsync/internal/services/mocks"
)

type controllerFixture struct {
	confirmer *portsmocks.MockConfirmer
	ctrl      *services.LockController
	host      *portsmocks.MockSurveyHost
	syncer    *servicesmocks.MockProjectSyncer
}

func newControllerFixture(t *testing.T) *controllerFixture {
	f := &controllerFixture{
		confirmer: portsmocks.NewMockConfirmer(t),
		host:      portsmocks.NewMockSurveyHost(t),
		syncer:    servicesmocks.NewMockProjectSyncer(t),
	}
	f.ctrl = services.NewLockController(f.syncer, f.host, f.confirmer, nil, nil)
	return f
}

func writable(id string) *domain.Project {
	return &domain.Project{ID: id, Name: "Project " + id, Permission: domain.PermissionReadAndWrite}
}

func downloaded(id string) *services.DownloadResult {
	return &services.DownloadResult{Exists: true, Path: "/projects/" + id + ".tml"}
}

// expectOpen sets up the reconcile, download, and load calls of a successful open
func (f *controllerFixture) expectOpen(p *domain.Project) {
	f.syncer.EXPECT().ReconcileMetadata(mock.Anything, p).Return(domain.MetadataMatch, nil).Once()
	f.syncer.EXPECT().DownloadProject(mock.Anything, p).Return(downloaded(p.ID), nil).Once()
	f.host.EXPECT().LoadLocalFile("/projects/" + p.ID + ".tml").Return(nil).Once()
}

// lock drives the controller into LOCKED(p)
func (f *controllerFixture) lock(t *testing.T, p *domain.Project) {
	t.Helper()
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(true, nil).Once()
	f.expectOpen(p)

	result, err := f.ctrl.OpenProject(context.Background(), p)
	require.NoError(t, err)
	require.True(t, result.Locked)
	require.Equal(t, domain.LockLocked, f.ctrl.State())
}

func TestLockController_InitialState(t *testing.T) {
	f := newControllerFixture(t)

	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
	assert.Nil(t, f.ctrl.CurrentProject())
	assert.False(t, f.ctrl.CanEdit())
}

func TestOpenProject_AcquiresThenDownloads(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")

	var order []string
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).
		Run(func(context.Context, *domain.Project) { order = append(order, "acquire") }).
		Return(true, nil)
	f.syncer.EXPECT().ReconcileMetadata(mock.Anything, p).Return(domain.MetadataNew, nil)
	f.syncer.EXPECT().DownloadProject(mock.Anything, p).
		Run(func(context.Context, *domain.Project) { order = append(order, "download") }).
		Return(downloaded("a"), nil)
	f.host.EXPECT().LoadLocalFile("/projects/a.tml").
		Run(func(string) { order = append(order, "load") }).
		Return(nil)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.Locked)
	assert.False(t, result.ReadOnly)
	assert.Equal(t, []string{"acquire", "download", "load"}, order)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
	assert.Equal(t, p, f.ctrl.CurrentProject())
	assert.Equal(t, p, f.ctrl.Snapshot().Viewing)
}

func TestOpenProject_ReadOnlyNeverLocks(t *testing.T) {
	f := newControllerFixture(t)
	p := &domain.Project{ID: "ro", Name: "Shared", Permission: domain.PermissionReadOnly}
	f.expectOpen(p)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.ReadOnly)
	assert.False(t, result.Locked)
	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
	assert.Nil(t, f.ctrl.CurrentProject())
	f.syncer.AssertNotCalled(t, "AcquireOrRefreshProjectMutex", mock.Anything, mock.Anything)

	// No upload either: the controller refuses before touching the service
	err = f.ctrl.UploadProject(context.Background(), "changes")
	assert.ErrorIs(t, err, domain.ErrLockNotHeld)
	f.syncer.AssertNotCalled(t, "UploadProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestOpenProject_LockRefusedStillDownloads(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	p.ActiveMutex = &domain.Mutex{User: "someone@example.com"}
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(false, nil)
	f.expectOpen(p)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.ReadOnly)
	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
}

func TestOpenProject_AcquireErrorReportsAndStaysUnlocked(t *testing.T) {
	f := newControllerFixture(t)
	listener := portsmocks.NewMockSyncListener(t)
	listener.EXPECT().Progress(mock.Anything, mock.Anything).Maybe()
	listener.EXPECT().Log(mock.Anything).Maybe()
	listener.EXPECT().Succeeded(mock.Anything, mock.Anything).Maybe()
	listener.EXPECT().Failed("acquire lock", mock.Anything).Once()
	ctrl := services.NewLockController(f.syncer, f.host, f.confirmer, listener, nil)

	p := writable("a")
	unreachable := errclass.New(errclass.KindNetworkUnreachable, "acquire lock", "", nil)
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(false, unreachable)
	f.expectOpen(p)

	result, err := ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.ReadOnly)
	assert.Equal(t, domain.LockUnlocked, ctrl.State())
}

func TestOpenProject_DownloadFailureKeepsLock(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(true, nil)
	f.syncer.EXPECT().ReconcileMetadata(mock.Anything, p).Return(domain.MetadataMatch, nil)
	f.syncer.EXPECT().DownloadProject(mock.Anything, p).
		Return(nil, errclass.New(errclass.KindTimeout, "download project", "", nil))

	_, err := f.ctrl.OpenProject(context.Background(), p)

	assert.ErrorIs(t, err, errclass.Timeout)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
}

func TestOpenProject_NoRemoteFileSkipsLoad(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("new")
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(true, nil)
	f.syncer.EXPECT().ReconcileMetadata(mock.Anything, p).Return(domain.MetadataNew, nil)
	f.syncer.EXPECT().DownloadProject(mock.Anything, p).
		Return(&services.DownloadResult{Path: "/projects/new.tml"}, nil)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.False(t, result.Download.Exists)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
}

func TestOpenProject_SameProjectRefreshesLock(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.lock(t, p)

	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(true, nil).Once()
	f.expectOpen(p)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.Locked)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
}

func TestOpenProject_SameProjectLockLost(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.lock(t, p)

	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).Return(false, nil).Once()
	f.expectOpen(p)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.ReadOnly)
	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
}

func TestOpenProject_SwitchDeclinedChangesNothing(t *testing.T) {
	f := newControllerFixture(t)
	a, b := writable("a"), writable("b")
	f.lock(t, a)

	f.confirmer.EXPECT().ConfirmSwitch(mock.Anything, a, b).Return(false, nil)

	result, err := f.ctrl.OpenProject(context.Background(), b)

	require.NoError(t, err)
	assert.True(t, result.Declined)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
	assert.Equal(t, a, f.ctrl.CurrentProject())
	f.syncer.AssertNotCalled(t, "ReleaseProjectMutex", mock.Anything, mock.Anything)
	f.syncer.AssertNotCalled(t, "AcquireOrRefreshProjectMutex", mock.Anything, b)
}

func TestOpenProject_SwitchReleasesThenAcquires(t *testing.T) {
	f := newControllerFixture(t)
	a, b := writable("a"), writable("b")
	f.lock(t, a)

	var order []string
	f.confirmer.EXPECT().ConfirmSwitch(mock.Anything, a, b).Return(true, nil)
	f.syncer.EXPECT().ReleaseProjectMutex(mock.Anything, a).
		Run(func(context.Context, *domain.Project) { order = append(order, "release a") }).
		Return(true, nil)
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, b).
		Run(func(context.Context, *domain.Project) { order = append(order, "acquire b") }).
		Return(true, nil)
	f.expectOpen(b)

	result, err := f.ctrl.OpenProject(context.Background(), b)

	require.NoError(t, err)
	assert.True(t, result.Locked)
	assert.Equal(t, []string{"release a", "acquire b"}, order)
	assert.Equal(t, b, f.ctrl.CurrentProject())
}

func TestOpenProject_SwitchAbortedWhenReleaseFails(t *testing.T) {
	f := newControllerFixture(t)
	a, b := writable("a"), writable("b")
	f.lock(t, a)

	f.confirmer.EXPECT().ConfirmSwitch(mock.Anything, a, b).Return(true, nil)
	f.syncer.EXPECT().ReleaseProjectMutex(mock.Anything, a).Return(false, nil)

	_, err := f.ctrl.OpenProject(context.Background(), b)

	assert.ErrorIs(t, err, domain.ErrReleaseRefused)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
	assert.Equal(t, a, f.ctrl.CurrentProject())
	f.syncer.AssertNotCalled(t, "AcquireOrRefreshProjectMutex", mock.Anything, b)
}

func TestUploadProject_FlushesThenUploads(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.lock(t, p)

	var order []string
	f.host.EXPECT().FlushCurrentEdits().
		Run(func() { order = append(order, "flush") }).
		Return(nil)
	f.syncer.EXPECT().UploadProject(mock.Anything, "new passage", p).
		Run(func(context.Context, string, *domain.Project) { order = append(order, "upload") }).
		Return(nil)

	err := f.ctrl.UploadProject(context.Background(), "new passage")

	require.NoError(t, err)
	assert.Equal(t, []string{"flush", "upload"}, order)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
}

func TestUploadProject_FailureKeepsLock(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.lock(t, p)

	f.host.EXPECT().FlushCurrentEdits().Return(nil)
	f.syncer.EXPECT().UploadProject(mock.Anything, "msg", p).
		Return(errclass.New(errclass.KindServer, "upload project", "", nil))

	err := f.ctrl.UploadProject(context.Background(), "msg")

	assert.ErrorIs(t, err, errclass.Server)
	assert.Equal(t, domain.LockLocked, f.ctrl.State())
}

func TestUploadProject_ServerSaysLockGone(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.lock(t, p)

	f.host.EXPECT().FlushCurrentEdits().Return(nil)
	f.syncer.EXPECT().UploadProject(mock.Anything, "msg", p).
		Return(errclass.New(errclass.KindValidation, "upload project", "", domain.ErrLockNotHeld))

	err := f.ctrl.UploadProject(context.Background(), "msg")

	assert.ErrorIs(t, err, domain.ErrLockNotHeld)
	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
	assert.Equal(t, p, f.ctrl.Snapshot().Viewing)
}

func TestUploadProject_FlushFailureSkipsUpload(t *testing.T) {
	f := newControllerFixture(t)
	f.lock(t, writable("a"))

	f.host.EXPECT().FlushCurrentEdits().Return(errors.New("disk full"))

	err := f.ctrl.UploadProject(context.Background(), "msg")

	assert.ErrorContains(t, err, "disk full")
	f.syncer.AssertNotCalled(t, "UploadProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlockProject(t *testing.T) {
	tests := []struct {
		name       string
		confirmed  bool
		released   bool
		releaseErr error
		wantState  domain.LockState
		wantErr    error
	}{
		{name: "released", confirmed: true, released: true, wantState: domain.LockUnlocked},
		{name: "refused", confirmed: true, released: false, wantState: domain.LockLocked, wantErr: domain.ErrReleaseRefused},
		{name: "unreachable", confirmed: true, releaseErr: errclass.NetworkUnreachable, wantState: domain.LockLocked, wantErr: errclass.NetworkUnreachable},
		{name: "declined", confirmed: false, wantState: domain.LockLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newControllerFixture(t)
			p := writable("a")
			f.lock(t, p)

			f.confirmer.EXPECT().ConfirmUnlock(mock.Anything, p).Return(tt.confirmed, nil)
			if tt.confirmed {
				f.syncer.EXPECT().ReleaseProjectMutex(mock.Anything, p).Return(tt.released, tt.releaseErr)
			}

			released, err := f.ctrl.UnlockProject(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantState == domain.LockUnlocked, released)
			assert.Equal(t, tt.wantState, f.ctrl.State())
		})
	}
}

func TestUnlockProject_NotLocked(t *testing.T) {
	f := newControllerFixture(t)

	_, err := f.ctrl.UnlockProject(context.Background())

	assert.ErrorIs(t, err, domain.ErrLockNotHeld)
}

func TestAcquireUploadRelease_NeverEndsTransient(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.lock(t, p)
	assert.False(t, f.ctrl.State().IsTransient())

	f.host.EXPECT().FlushCurrentEdits().Return(nil)
	f.syncer.EXPECT().UploadProject(mock.Anything, "msg", p).Return(nil)
	f.syncer.EXPECT().ReleaseProjectMutex(mock.Anything, p).Return(true, nil)

	require.NoError(t, f.ctrl.UploadAndRelease(context.Background(), "msg"))

	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
	assert.Nil(t, f.ctrl.CurrentProject())
}

func TestCollaboratorPanicEndsOnModeledEdge(t *testing.T) {
	f := newControllerFixture(t)
	p := writable("a")
	f.syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, p).
		RunAndReturn(func(context.Context, *domain.Project) (bool, error) { panic("driver bug") })
	f.expectOpen(p)

	result, err := f.ctrl.OpenProject(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, result.ReadOnly)
	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
}

func TestReleaseIfHeld(t *testing.T) {
	f := newControllerFixture(t)
	assert.False(t, f.ctrl.ReleaseIfHeld(context.Background()), "nothing held")

	p := writable("a")
	f.lock(t, p)
	f.syncer.EXPECT().ReleaseProjectMutex(mock.Anything, p).Return(true, nil)

	assert.True(t, f.ctrl.ReleaseIfHeld(context.Background()))
	assert.Equal(t, domain.LockUnlocked, f.ctrl.State())
}

func TestLockController_SerializesTransitions(t *testing.T) {
	syncer := servicesmocks.NewMockProjectSyncer(t)
	host := portsmocks.NewMockSurveyHost(t)
	confirmer := portsmocks.NewMockConfirmer(t)
	pool := async.NewPool(4, 16)
	defer pool.Shutdown(context.Background())

	var inFlight, maxInFlight atomic.Int32
	track := func() func() {
		n := inFlight.Add(1)
		for {
			old := maxInFlight.Load()
			if n <= old || maxInFlight.CompareAndSwap(old, n) {
				break
			}
		}
		return func() { inFlight.Add(-1) }
	}

	syncer.EXPECT().AcquireOrRefreshProjectMutex(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.Project) (bool, error) {
			defer track()()
			return true, nil
		})
	syncer.EXPECT().ReconcileMetadata(mock.Anything, mock.Anything).Return(domain.MetadataMatch, nil)
	syncer.EXPECT().DownloadProject(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p *domain.Project) (*services.DownloadResult, error) {
			defer track()()
			return downloaded(p.ID), nil
		})
	host.EXPECT().LoadLocalFile(mock.Anything).Return(nil)

	ctrl := services.NewLockController(syncer, host, confirmer, nil, pool)
	p := writable("a")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ctrl.OpenProjectAsync(context.Background(), p).Wait(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Equal(t, domain.LockLocked, ctrl.State())
}
