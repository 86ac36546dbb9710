package services

import (
	"context"

	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
)

// AsyncSyncService runs SyncService calls on the shared worker pool.
// Callers get a future immediately and never block on network I/O.
type AsyncSyncService struct {
	ctx  context.Context
	pool *async.Pool
	sync *SyncService
}

// NewAsyncSyncService creates a new AsyncSyncService.
// ctx is the parent of every call's own deadline.
func NewAsyncSyncService(ctx context.Context, pool *async.Pool, sync *SyncService) *AsyncSyncService {
	return &AsyncSyncService{ctx: ctx, pool: pool, sync: sync}
}

func (a *AsyncSyncService) Authenticate(req domain.LoginRequest) *async.Future[struct{}] {
	return async.Submit(a.pool, "authenticate", func() (struct{}, error) {
		return struct{}{}, a.sync.Authenticate(a.ctx, req)
	})
}

func (a *AsyncSyncService) ListProjects() *async.Future[[]domain.Project] {
	return async.Submit(a.pool, "list projects", func() ([]domain.Project, error) {
		return a.sync.ListProjects(a.ctx)
	})
}

func (a *AsyncSyncService) CreateProject(project domain.NewProject) *async.Future[*domain.Project] {
	return async.Submit(a.pool, "create project", func() (*domain.Project, error) {
		return a.sync.CreateProject(a.ctx, project)
	})
}

func (a *AsyncSyncService) DownloadProject(project *domain.Project) *async.Future[*DownloadResult] {
	return async.Submit(a.pool, "download project", func() (*DownloadResult, error) {
		return a.sync.DownloadProject(a.ctx, project)
	})
}

func (a *AsyncSyncService) UploadProject(message string, project *domain.Project) *async.Future[struct{}] {
	return async.Submit(a.pool, "upload project", func() (struct{}, error) {
		return struct{}{}, a.sync.UploadProject(a.ctx, message, project)
	})
}

func (a *AsyncSyncService) AcquireOrRefreshProjectMutex(project *domain.Project) *async.Future[bool] {
	return async.Submit(a.pool, "acquire lock", func() (bool, error) {
		return a.sync.AcquireOrRefreshProjectMutex(a.ctx, project)
	})
}

func (a *AsyncSyncService) ReleaseProjectMutex(project *domain.Project) *async.Future[bool] {
	return async.Submit(a.pool, "release lock", func() (bool, error) {
		return a.sync.ReleaseProjectMutex(a.ctx, project)
	})
}
