package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

// SyncService moves survey files between the repository and local disk.
// Every call except Authenticate requires an authenticated session, runs
// under its own deadline, and is attempted exactly once.
type SyncService struct {
	files    ports.ProjectFileStore
	metadata ports.ProjectMetadataRepository
	now      func() time.Time
	remote   ports.RemoteRepository
	session  *domain.Session
	timeouts Timeouts
}

// Verify interface compliance at compile time
var _ ProjectSyncer = (*SyncService)(nil)

// NewSyncService creates a new SyncService
func NewSyncService(
	session *domain.Session,
	remote ports.RemoteRepository,
	files ports.ProjectFileStore,
	metadata ports.ProjectMetadataRepository,
	timeouts Timeouts,
) *SyncService {
	defaults := DefaultTimeouts()
	if timeouts.Metadata <= 0 {
		timeouts.Metadata = defaults.Metadata
	}
	if timeouts.Transfer <= 0 {
		timeouts.Transfer = defaults.Transfer
	}
	return &SyncService{
		files:    files,
		metadata: metadata,
		now:      func() time.Time { return time.Now().UTC() },
		remote:   remote,
		session:  session,
		timeouts: timeouts,
	}
}

// Authenticate logs in with a token or with email and password.
// On any failure the session is left unauthenticated.
func (s *SyncService) Authenticate(ctx context.Context, req domain.LoginRequest) error {
	const op = "authenticate"

	serverAddress, err := domain.NormalizeServerAddress(req.ServerAddress)
	if err != nil {
		s.session.Clear()
		return errclass.New(errclass.KindValidation, op, err.Error(), err)
	}
	if err := req.Validate(); err != nil {
		s.session.Clear()
		return errclass.New(errclass.KindValidation, op, err.Error(), err)
	}

	token, err := async.RunWithTimeout(ctx, op, s.timeouts.Metadata, func(ctx context.Context) (string, error) {
		if req.UsesToken() {
			return s.remote.AuthenticateWithToken(ctx, serverAddress, strings.TrimSpace(req.Token))
		}
		return s.remote.AuthenticateWithPassword(ctx, serverAddress, strings.TrimSpace(req.Email), req.Password)
	})
	if err != nil {
		s.session.Clear()
		logging.Logger.Warn("Authentication failed", "server", serverAddress, "error", err)
		return errclass.FromError(op, err)
	}

	s.session.Set(domain.Credentials{ServerAddress: serverAddress, Token: token})
	logging.Logger.Info("Authenticated", "server", serverAddress, "with_token", req.UsesToken())
	return nil
}

// Logout clears the session. It is always safe to call.
func (s *SyncService) Logout() {
	s.session.Clear()
	logging.Logger.Info("Logged out")
}

// IsAuthenticated reports whether the session holds usable credentials
func (s *SyncService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

// Credentials returns a consistent snapshot of the session
func (s *SyncService) Credentials() domain.Credentials {
	return s.session.Snapshot()
}

// LocalPath returns where a project's survey file lives on disk
func (s *SyncService) LocalPath(projectID string) string {
	return s.files.Path(projectID)
}

func (s *SyncService) credentials(op string) (domain.Credentials, error) {
	creds := s.session.Snapshot()
	if !creds.IsAuthenticated() {
		return creds, errclass.New(errclass.KindAuth, op, "not authenticated", domain.ErrNotAuthenticated)
	}
	return creds, nil
}

// ListProjects returns the projects visible to the user. It never touches
// session or lock state, so it is safe to call at any time.
func (s *SyncService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const op = "list projects"
	creds, err := s.credentials(op)
	if err != nil {
		return nil, err
	}

	return async.RunWithTimeout(ctx, op, s.timeouts.Metadata, func(ctx context.Context) ([]domain.Project, error) {
		return s.remote.ListProjects(ctx, creds)
	})
}

// CreateProject validates and creates a project
func (s *SyncService) CreateProject(ctx context.Context, project domain.NewProject) (*domain.Project, error) {
	const op = "create project"
	creds, err := s.credentials(op)
	if err != nil {
		return nil, err
	}
	if err := project.Validate(); err != nil {
		return nil, errclass.New(errclass.KindValidation, op, err.Error(), err)
	}

	created, err := async.RunWithTimeout(ctx, op, s.timeouts.Metadata, func(ctx context.Context) (*domain.Project, error) {
		return s.remote.CreateProject(ctx, creds, project)
	})
	if err != nil {
		return nil, err
	}

	s.recordIdentity(ctx, created, nil)
	return created, nil
}

// DownloadProject replaces the local survey file with the repository copy.
// A project without a file (404) or without content (422) is not an error:
// any stale local copy is removed and the result reports no local file.
func (s *SyncService) DownloadProject(ctx context.Context, project *domain.Project) (*DownloadResult, error) {
	const op = "download project"
	creds, err := s.credentials(op)
	if err != nil {
		return nil, err
	}

	staged, err := s.files.Stage(project.ID)
	if err != nil {
		return nil, errclass.New(errclass.KindUnknown, op, "cannot prepare local file", err)
	}

	status, err := async.RunWithTimeout(ctx, op, s.timeouts.Transfer, func(ctx context.Context) (ports.DownloadStatus, error) {
		return s.remote.DownloadProject(ctx, creds, project.ID, staged)
	})
	if err != nil {
		_ = staged.Discard()
		return nil, err
	}

	result := &DownloadResult{Path: s.files.Path(project.ID)}

	switch status {
	case ports.DownloadOK:
		if err := staged.Commit(); err != nil {
			return nil, errclass.New(errclass.KindUnknown, op, "cannot write local file", err)
		}
		result.Exists = true
		now := s.now()
		s.recordIdentity(ctx, project, &now)
	default:
		_ = staged.Discard()
		if err := s.files.Remove(project.ID); err != nil {
			return nil, errclass.New(errclass.KindUnknown, op, "cannot remove stale local file", err)
		}
		result.Empty = status == ports.DownloadEmpty
		s.recordIdentity(ctx, project, nil)
	}

	logging.Logger.Info("Download finished",
		"id", project.ID,
		"status", status.String(),
		"path", result.Path)
	return result, nil
}

// UploadProject sends the local survey file with a commit message.
// The lock is refreshed first; without it nothing is sent.
func (s *SyncService) UploadProject(ctx context.Context, message string, project *domain.Project) error {
	const op = "upload project"
	creds, err := s.credentials(op)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return errclass.New(errclass.KindValidation, op, "a commit message is required", nil)
	}
	if project.IsReadOnly() {
		return errclass.New(errclass.KindValidation, op, domain.ErrReadOnlyProject.Error(), domain.ErrReadOnlyProject)
	}
	exists, err := s.files.Exists(project.ID)
	if err != nil {
		return errclass.New(errclass.KindUnknown, op, "cannot check local file", err)
	}
	if !exists {
		return errclass.New(errclass.KindValidation, op, "nothing to upload, download the project first", domain.ErrNoLocalFile)
	}

	held, err := s.AcquireOrRefreshProjectMutex(ctx, project)
	if err != nil {
		return err
	}
	if !held {
		return errclass.New(errclass.KindValidation, op, domain.ErrLockNotHeld.Error(), domain.ErrLockNotHeld)
	}

	artifact, err := s.files.Open(project.ID)
	if err != nil {
		return errclass.New(errclass.KindUnknown, op, "cannot read local file", err)
	}
	defer artifact.Close()

	_, err = async.RunWithTimeout(ctx, op, s.timeouts.Transfer, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.remote.UploadProject(ctx, creds, project.ID, strings.TrimSpace(message), artifact)
	})
	if err != nil {
		return err
	}

	s.markUploaded(ctx, project)
	logging.Logger.Info("Upload finished", "id", project.ID)
	return nil
}

// AcquireOrRefreshProjectMutex asks the server for the project lock.
// false means someone else holds it; it is not an error.
func (s *SyncService) AcquireOrRefreshProjectMutex(ctx context.Context, project *domain.Project) (bool, error) {
	const op = "acquire lock"
	creds, err := s.credentials(op)
	if err != nil {
		return false, err
	}
	if project.IsReadOnly() {
		logging.Logger.Info("Not locking read-only project", "id", project.ID)
		return false, nil
	}

	return async.RunWithTimeout(ctx, op, s.timeouts.Metadata, func(ctx context.Context) (bool, error) {
		return s.remote.AcquireMutex(ctx, creds, project.ID)
	})
}

// ReleaseProjectMutex gives the project lock back.
// false means the server refused; it is not an error.
func (s *SyncService) ReleaseProjectMutex(ctx context.Context, project *domain.Project) (bool, error) {
	const op = "release lock"
	creds, err := s.credentials(op)
	if err != nil {
		return false, err
	}

	return async.RunWithTimeout(ctx, op, s.timeouts.Metadata, func(ctx context.Context) (bool, error) {
		return s.remote.ReleaseMutex(ctx, creds, project.ID)
	})
}

// ReconcileMetadata compares the local sidecar record with the remote
// project. When they describe different projects the stale local file is
// removed and the record is rewritten.
func (s *SyncService) ReconcileMetadata(ctx context.Context, project *domain.Project) (domain.MetadataStatus, error) {
	record, err := s.metadata.Get(ctx, project.ID)
	if err != nil && !errors.Is(err, domain.ErrMetadataNotFound) {
		return "", fmt.Errorf("failed to read metadata: %w", err)
	}
	if err != nil {
		record = nil
	}

	status := record.CompareIdentity(project)
	switch status {
	case domain.MetadataMismatch:
		logging.Logger.Warn("Local file belongs to a different project, discarding",
			"id", project.ID,
			"recorded_created", record.RemoteCreationDate,
			"remote_created", project.CreationDate)
		if err := s.files.Remove(project.ID); err != nil {
			return status, err
		}
		if err := s.metadata.Delete(ctx, project.ID); err != nil {
			return status, fmt.Errorf("failed to reset metadata: %w", err)
		}
		fallthrough
	case domain.MetadataNew, domain.MetadataMatch:
		if err := s.metadata.Save(ctx, identityOf(project, nil)); err != nil {
			return status, fmt.Errorf("failed to save metadata: %w", err)
		}
	}
	return status, nil
}

func identityOf(project *domain.Project, downloadedAt *time.Time) domain.ProjectMetadata {
	return domain.ProjectMetadata{
		LastDownloadedAt:   downloadedAt,
		Name:               project.Name,
		ProjectID:          project.ID,
		RemoteCreationDate: project.CreationDate,
		RemoteModifiedDate: project.ModifiedDate,
	}
}

// recordIdentity updates the sidecar. Failures are logged: the sidecar is
// bookkeeping and never fails a completed transfer.
func (s *SyncService) recordIdentity(ctx context.Context, project *domain.Project, downloadedAt *time.Time) {
	if err := s.metadata.Save(ctx, identityOf(project, downloadedAt)); err != nil {
		logging.Logger.Warn("Failed to record project metadata", "id", project.ID, "error", err)
	}
}

func (s *SyncService) markUploaded(ctx context.Context, project *domain.Project) {
	now := s.now()
	err := s.metadata.MarkUploaded(ctx, project.ID, now)
	if errors.Is(err, domain.ErrMetadataNotFound) {
		record := identityOf(project, nil)
		record.LastUploadedAt = &now
		err = s.metadata.Save(ctx, record)
	}
	if err != nil {
		logging.Logger.Warn("Failed to record upload", "id", project.ID, "error", err)
	}
}
