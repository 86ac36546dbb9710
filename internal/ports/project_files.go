package ports

import "io"

// StagedFile is a pending replacement of a project file.
// Nothing is visible at the final path until Commit succeeds.
type StagedFile interface {
	io.Writer
	Commit() error
	Discard() error
}

// ProjectFileStore manages the local synchronized files, one per project
type ProjectFileStore interface {
	Exists(projectID string) (bool, error)
	Open(projectID string) (io.ReadCloser, error)
	Path(projectID string) string
	Remove(projectID string) error
	Stage(projectID string) (StagedFile, error)
}
