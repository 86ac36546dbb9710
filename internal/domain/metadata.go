package domain

import "time"

// ProjectMetadata is the local sidecar record kept per project id
type ProjectMetadata struct {
	CreatedAt          time.Time
	LastDownloadedAt   *time.Time
	LastUploadedAt     *time.Time
	Name               string
	ProjectID          string
	RemoteCreationDate time.Time
	RemoteModifiedDate time.Time
	UpdatedAt          time.Time
}

// MetadataStatus is the outcome of comparing the sidecar with the remote project
type MetadataStatus string

const (
	MetadataNew      MetadataStatus = "new"
	MetadataMatch    MetadataStatus = "match"
	MetadataMismatch MetadataStatus = "mismatch"
)

// CompareIdentity checks whether the sidecar describes the same remote project.
// A zero creation date on either side cannot prove a mismatch.
func (m *ProjectMetadata) CompareIdentity(p *Project) MetadataStatus {
	if m == nil {
		return MetadataNew
	}
	if m.ProjectID != p.ID {
		return MetadataMismatch
	}
	if !m.RemoteCreationDate.IsZero() && !p.CreationDate.IsZero() &&
		!m.RemoteCreationDate.Equal(p.CreationDate) {
		return MetadataMismatch
	}
	return MetadataMatch
}
