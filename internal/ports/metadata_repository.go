package ports

import (
	"context"
	"time"

	"github.com/renato0307/tmlsync/internal/domain"
)

// ProjectMetadataReader reads sidecar records
type ProjectMetadataReader interface {
	Get(ctx context.Context, projectID string) (*domain.ProjectMetadata, error)
	List(ctx context.Context) ([]domain.ProjectMetadata, error)
}

// ProjectMetadataWriter creates, updates, and deletes sidecar records
type ProjectMetadataWriter interface {
	Delete(ctx context.Context, projectID string) error
	MarkUploaded(ctx context.Context, projectID string, at time.Time) error
	Save(ctx context.Context, metadata domain.ProjectMetadata) error
}

// ProjectMetadataRepository is the composite interface
type ProjectMetadataRepository interface {
	ProjectMetadataReader
	ProjectMetadataWriter
	Close() error
}
