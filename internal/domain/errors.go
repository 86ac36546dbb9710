package domain

import "errors"

var (
	ErrInvalidServerAddress = errors.New("invalid server address")
	ErrInvalidToken         = errors.New("token must be 40 hexadecimal characters")
	ErrLockNotHeld          = errors.New("project lock is not held")
	ErrMetadataNotFound     = errors.New("project metadata not found")
	ErrMissingCredentials   = errors.New("email and password are required")
	ErrNoLocalFile          = errors.New("no local file for project")
	ErrNoProjectOpen        = errors.New("no project is open")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrReadOnlyProject      = errors.New("project is read-only")
	ErrReleaseRefused       = errors.New("server refused to release the lock")
)
