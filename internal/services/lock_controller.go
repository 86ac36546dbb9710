package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

const (
	opOpen    = "open project"
	opRelease = "release lock"
	opUnlock  = "unlock project"
	opUpload  = "upload project"
)

// LockSnapshot is a consistent view of the controller state
type LockSnapshot struct {
	// Project is the locked project; nil when UNLOCKED
	Project *domain.Project
	State   domain.LockState
	// Viewing is the project loaded in the host, locked or not
	Viewing *domain.Project
}

// OpenResult describes what OpenProject did
type OpenResult struct {
	// Declined is set when the user kept the current lock instead of switching
	Declined bool
	Download *DownloadResult
	Locked   bool
	ReadOnly bool
}

// LockController owns the client-side mirror of the project lock.
//
// The server is the source of truth: every acquire or release response
// overrides local assumptions. Transitions are serialized, and no call
// returns while the state is ACQUIRING or RELEASING.
type LockController struct {
	confirmer ports.Confirmer
	host      ports.SurveyHost
	listener  ports.SyncListener
	pool      *async.Pool
	syncer    ProjectSyncer

	// opMu serializes lock-affecting operations
	opMu sync.Mutex

	mu      sync.RWMutex
	project *domain.Project
	state   domain.LockState
	viewing *domain.Project
}

// NewLockController creates a controller in the UNLOCKED state.
// listener and pool may be nil; without a pool the async variants run inline.
func NewLockController(
	syncer ProjectSyncer,
	host ports.SurveyHost,
	confirmer ports.Confirmer,
	listener ports.SyncListener,
	pool *async.Pool,
) *LockController {
	if listener == nil {
		listener = noopListener{}
	}
	return &LockController{
		confirmer: confirmer,
		host:      host,
		listener:  listener,
		pool:      pool,
		state:     domain.LockUnlocked,
		syncer:    syncer,
	}
}

// State returns the current lock state
func (c *LockController) State() domain.LockState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentProject returns the locked project, or nil when UNLOCKED
func (c *LockController) CurrentProject() *domain.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.project
}

// Snapshot returns state, locked project, and viewed project together
func (c *LockController) Snapshot() LockSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return LockSnapshot{Project: c.project, State: c.state, Viewing: c.viewing}
}

// CanEdit reports whether editing controls should be enabled
func (c *LockController) CanEdit() bool {
	return c.State() == domain.LockLocked
}

func (c *LockController) transition(to domain.LockState, project *domain.Project) {
	c.mu.Lock()
	from := c.state
	if !domain.CanTransition(from, to) {
		logging.Logger.Error("Illegal lock transition", "from", from, "to", to)
	}
	c.state = to
	if to == domain.LockUnlocked {
		c.project = nil
	} else {
		c.project = project
	}
	c.mu.Unlock()

	id := ""
	if project != nil {
		id = project.ID
	}
	logging.Logger.Info("Lock state changed", "from", from, "to", to, "project", id)
}

func (c *LockController) setViewing(project *domain.Project) {
	c.mu.Lock()
	c.viewing = project
	c.mu.Unlock()
}

// guard runs a collaborator call, turning a panic into an error so that
// every transition ends on a modeled edge
func guard[T any](op string, fn func() (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Collaborator panicked", "op", op, "panic", r)
			err = errclass.New(errclass.KindUnknown, op, fmt.Sprintf("unexpected failure: %v", r), nil)
		}
	}()
	return fn()
}

func guardErr(op string, fn func() error) error {
	_, err := guard(op, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

func (c *LockController) fail(op string, err error) error {
	logging.Logger.Warn("Operation failed", "op", op, "error", err)
	c.listener.Failed(op, err)
	return err
}

// OpenProject locks (when allowed), downloads, and loads a project.
//
// Read-only projects are never locked. When another project is locked the
// user must confirm the switch; declining changes nothing. A refused lock
// still downloads the project for viewing.
func (c *LockController) OpenProject(ctx context.Context, project *domain.Project) (*OpenResult, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.listener.Progress(opOpen, true)
	defer c.listener.Progress(opOpen, false)

	current := c.Snapshot()
	if current.State == domain.LockLocked && current.Project.ID != project.ID {
		confirmed, err := guard(opOpen, func() (bool, error) {
			return c.confirmer.ConfirmSwitch(ctx, current.Project, project)
		})
		if err != nil {
			return nil, c.fail(opOpen, err)
		}
		if !confirmed {
			c.listener.Log(fmt.Sprintf("Keeping the lock on %s", current.Project.Name))
			return &OpenResult{Declined: true, Locked: true}, nil
		}
		if err := c.release(ctx, current.Project); err != nil {
			return nil, c.fail(opOpen, fmt.Errorf("switch aborted: %w", err))
		}
		current = c.Snapshot()
	}

	locked := false
	switch {
	case project.IsReadOnly():
		if current.State == domain.LockLocked {
			// Permission was downgraded while we held the lock
			if err := c.release(ctx, current.Project); err != nil {
				logging.Logger.Warn("Could not release lock on now read-only project", "id", project.ID, "error", err)
				c.transition(domain.LockUnlocked, nil)
			}
		}
		c.listener.Log(fmt.Sprintf("%s is read-only, opening without a lock", project.Name))
	case current.State == domain.LockLocked:
		locked = c.refresh(ctx, project)
	default:
		locked = c.acquire(ctx, project)
	}

	if _, err := guard(opOpen, func() (domain.MetadataStatus, error) {
		return c.syncer.ReconcileMetadata(ctx, project)
	}); err != nil {
		logging.Logger.Warn("Metadata reconciliation failed", "id", project.ID, "error", err)
	}

	download, err := guard(opOpen, func() (*DownloadResult, error) {
		return c.syncer.DownloadProject(ctx, project)
	})
	if err != nil {
		return nil, c.fail(opOpen, err)
	}

	if download.Exists {
		if err := guardErr(opOpen, func() error { return c.host.LoadLocalFile(download.Path) }); err != nil {
			return nil, c.fail(opOpen, err)
		}
	} else if download.Empty {
		c.listener.Log(fmt.Sprintf("%s has no content yet", project.Name))
	} else {
		c.listener.Log(fmt.Sprintf("%s has no survey file yet", project.Name))
	}
	c.setViewing(project)

	result := &OpenResult{
		Download: download,
		Locked:   locked,
		ReadOnly: !locked,
	}
	mode := "read-only"
	if locked {
		mode = "locked for editing"
	}
	c.listener.Succeeded(opOpen, fmt.Sprintf("%s opened, %s", project.Name, mode))
	return result, nil
}

// acquire drives UNLOCKED -> ACQUIRING -> LOCKED or back to UNLOCKED
func (c *LockController) acquire(ctx context.Context, project *domain.Project) bool {
	c.transition(domain.LockAcquiring, project)

	held, err := guard("acquire lock", func() (bool, error) {
		return c.syncer.AcquireOrRefreshProjectMutex(ctx, project)
	})
	switch {
	case err != nil:
		c.transition(domain.LockUnlocked, nil)
		c.listener.Failed("acquire lock", err)
		return false
	case !held:
		c.transition(domain.LockUnlocked, nil)
		c.listener.Log(lockRefusedMessage(project))
		return false
	}

	c.transition(domain.LockLocked, project)
	return true
}

// refresh re-validates a lock already held. A refusal means the server no
// longer considers us the holder.
func (c *LockController) refresh(ctx context.Context, project *domain.Project) bool {
	held, err := guard("acquire lock", func() (bool, error) {
		return c.syncer.AcquireOrRefreshProjectMutex(ctx, project)
	})
	if err != nil {
		c.listener.Failed("acquire lock", err)
		return true
	}
	if !held {
		c.transition(domain.LockUnlocked, nil)
		c.listener.Log(lockRefusedMessage(project))
		return false
	}
	return true
}

func lockRefusedMessage(project *domain.Project) string {
	if project.ActiveMutex != nil && project.ActiveMutex.User != "" {
		return fmt.Sprintf("%s is locked by %s, opening read-only", project.Name, project.ActiveMutex.User)
	}
	return fmt.Sprintf("Could not lock %s, opening read-only", project.Name)
}

// release drives LOCKED -> RELEASING -> UNLOCKED, or back to LOCKED on failure
func (c *LockController) release(ctx context.Context, project *domain.Project) error {
	c.transition(domain.LockReleasing, project)

	released, err := guard(opRelease, func() (bool, error) {
		return c.syncer.ReleaseProjectMutex(ctx, project)
	})
	if err == nil && !released {
		err = domain.ErrReleaseRefused
	}
	if err != nil {
		c.transition(domain.LockLocked, project)
		return err
	}

	c.transition(domain.LockUnlocked, nil)
	c.listener.Log(fmt.Sprintf("Released the lock on %s", project.Name))
	return nil
}

// UploadProject flushes host edits and uploads the locked project.
// The state stays LOCKED unless the server reports the lock is gone.
func (c *LockController) UploadProject(ctx context.Context, message string) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.listener.Progress(opUpload, true)
	defer c.listener.Progress(opUpload, false)

	if err := c.upload(ctx, message); err != nil {
		return c.fail(opUpload, err)
	}
	return nil
}

func (c *LockController) upload(ctx context.Context, message string) error {
	current := c.Snapshot()
	if current.State != domain.LockLocked {
		return domain.ErrLockNotHeld
	}

	if err := guardErr(opUpload, c.host.FlushCurrentEdits); err != nil {
		return fmt.Errorf("failed to save local edits: %w", err)
	}

	err := guardErr(opUpload, func() error {
		return c.syncer.UploadProject(ctx, message, current.Project)
	})
	if errors.Is(err, domain.ErrLockNotHeld) {
		c.transition(domain.LockUnlocked, nil)
		c.setViewing(current.Project)
	}
	if err != nil {
		return err
	}

	c.listener.Succeeded(opUpload, fmt.Sprintf("%s uploaded", current.Project.Name))
	return nil
}

// UnlockProject releases the lock after the user confirms.
// It reports whether the lock was released.
func (c *LockController) UnlockProject(ctx context.Context) (bool, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	current := c.Snapshot()
	if current.State != domain.LockLocked {
		return false, c.fail(opUnlock, domain.ErrLockNotHeld)
	}

	confirmed, err := guard(opUnlock, func() (bool, error) {
		return c.confirmer.ConfirmUnlock(ctx, current.Project)
	})
	if err != nil {
		return false, c.fail(opUnlock, err)
	}
	if !confirmed {
		return false, nil
	}

	c.listener.Progress(opUnlock, true)
	defer c.listener.Progress(opUnlock, false)

	if err := c.release(ctx, current.Project); err != nil {
		return false, c.fail(opUnlock, err)
	}
	c.listener.Succeeded(opUnlock, fmt.Sprintf("%s unlocked", current.Project.Name))
	return true, nil
}

// UploadAndRelease uploads and then releases the lock in one serialized step.
// A failed upload leaves the lock held.
func (c *LockController) UploadAndRelease(ctx context.Context, message string) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.listener.Progress(opUpload, true)
	defer c.listener.Progress(opUpload, false)

	current := c.Snapshot()
	if err := c.upload(ctx, message); err != nil {
		return c.fail(opUpload, err)
	}
	if err := c.release(ctx, current.Project); err != nil {
		return c.fail(opRelease, err)
	}
	return nil
}

// ReleaseIfHeld releases the lock without confirmation, for shutdown.
// It reports whether a lock was released.
func (c *LockController) ReleaseIfHeld(ctx context.Context) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	current := c.Snapshot()
	if current.State != domain.LockLocked {
		return false
	}
	if err := c.release(ctx, current.Project); err != nil {
		logging.Logger.Warn("Could not release lock on shutdown", "id", current.Project.ID, "error", err)
		c.listener.Failed(opRelease, err)
		return false
	}
	return true
}

// runAsync submits fn to pool, or runs it inline when there is no pool
func runAsync[T any](pool *async.Pool, name string, fn func() (T, error)) *async.Future[T] {
	if pool == nil {
		value, err := fn()
		return async.Completed(value, err)
	}
	return async.Submit(pool, name, fn)
}

// OpenProjectAsync runs OpenProject on the worker pool
func (c *LockController) OpenProjectAsync(ctx context.Context, project *domain.Project) *async.Future[*OpenResult] {
	return runAsync(c.pool, opOpen, func() (*OpenResult, error) {
		return c.OpenProject(ctx, project)
	})
}

// UploadProjectAsync runs UploadProject on the worker pool
func (c *LockController) UploadProjectAsync(ctx context.Context, message string) *async.Future[struct{}] {
	return runAsync(c.pool, opUpload, func() (struct{}, error) {
		return struct{}{}, c.UploadProject(ctx, message)
	})
}

// UnlockProjectAsync runs UnlockProject on the worker pool
func (c *LockController) UnlockProjectAsync(ctx context.Context) *async.Future[bool] {
	return runAsync(c.pool, opUnlock, func() (bool, error) {
		return c.UnlockProject(ctx)
	})
}

// UploadAndReleaseAsync runs UploadAndRelease on the worker pool
func (c *LockController) UploadAndReleaseAsync(ctx context.Context, message string) *async.Future[struct{}] {
	return runAsync(c.pool, opUpload, func() (struct{}, error) {
		return struct{}{}, c.UploadAndRelease(ctx, message)
	})
}
