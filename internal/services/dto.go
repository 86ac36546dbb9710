package services

import (
	"context"
	"time"

	"github.com/renato0307/tmlsync/internal/domain"
)

// Timeouts bounds each repository call
type Timeouts struct {
	// Metadata covers authentication, listing, creation, and lock calls
	Metadata time.Duration
	// Transfer covers file downloads and uploads
	Transfer time.Duration
}

// DefaultTimeouts returns 30s for metadata calls and 5 minutes for transfers
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Metadata: 30 * time.Second,
		Transfer: 5 * time.Minute,
	}
}

// DownloadResult describes the local file after a download
type DownloadResult struct {
	// Empty is set when the project exists but has no content yet
	Empty bool
	// Exists reports whether a local file is present at Path
	Exists bool
	Path   string
}

// ProjectSyncer is the part of SyncService the lock controller drives
type ProjectSyncer interface {
	AcquireOrRefreshProjectMutex(ctx context.Context, project *domain.Project) (bool, error)
	DownloadProject(ctx context.Context, project *domain.Project) (*DownloadResult, error)
	ReconcileMetadata(ctx context.Context, project *domain.Project) (domain.MetadataStatus, error)
	ReleaseProjectMutex(ctx context.Context, project *domain.Project) (bool, error)
	UploadProject(ctx context.Context, message string, project *domain.Project) error
}
