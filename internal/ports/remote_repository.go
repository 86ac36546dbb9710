package ports

import (
	"context"
	"io"

	"github.com/renato0307/tmlsync/internal/domain"
)

// DownloadStatus is the outcome of a download that did not fail
type DownloadStatus int

const (
	// DownloadOK means the file was written to the destination
	DownloadOK DownloadStatus = iota
	// DownloadNotFound means the project has no file yet (HTTP 404)
	DownloadNotFound
	// DownloadEmpty means the project exists but has no content (HTTP 422)
	DownloadEmpty
)

func (s DownloadStatus) String() string {
	switch s {
	case DownloadOK:
		return "ok"
	case DownloadNotFound:
		return "not-found"
	case DownloadEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// RemoteAuthenticator exchanges credentials for a repository token
type RemoteAuthenticator interface {
	AuthenticateWithPassword(ctx context.Context, serverAddress, email, password string) (string, error)
	AuthenticateWithToken(ctx context.Context, serverAddress, token string) (string, error)
}

// RemoteProjectReader reads project metadata from the repository
type RemoteProjectReader interface {
	ListProjects(ctx context.Context, creds domain.Credentials) ([]domain.Project, error)
}

// RemoteProjectWriter creates projects in the repository
type RemoteProjectWriter interface {
	CreateProject(ctx context.Context, creds domain.Credentials, project domain.NewProject) (*domain.Project, error)
}

// RemoteFileTransfer moves survey files to and from the repository
type RemoteFileTransfer interface {
	DownloadProject(ctx context.Context, creds domain.Credentials, projectID string, dst io.Writer) (DownloadStatus, error)
	UploadProject(ctx context.Context, creds domain.Credentials, projectID, message string, artifact io.Reader) error
}

// RemoteMutex acquires and releases the server-side project lock.
// A negative outcome is (false, nil); only transport failures are errors.
type RemoteMutex interface {
	AcquireMutex(ctx context.Context, creds domain.Credentials, projectID string) (bool, error)
	ReleaseMutex(ctx context.Context, creds domain.Credentials, projectID string) (bool, error)
}

// RemoteRepository is the composite interface
type RemoteRepository interface {
	RemoteAuthenticator
	RemoteProjectReader
	RemoteProjectWriter
	RemoteFileTransfer
	RemoteMutex
}
