// Package filestore keeps one local survey file per project on an afero filesystem.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store implements ports.ProjectFileStore
type Store struct {
	fs   afero.Fs
	root string
}

// Verify interface compliance at compile time
var _ ports.ProjectFileStore = (*Store)(nil)

// NewStore creates a store rooted at root, creating the directory if needed
func NewStore(fs afero.Fs, root string) (*Store, error) {
	if err := fs.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create projects directory: %w", err)
	}
	logging.Logger.Debug("Project file store ready", "root", root)
	return &Store{fs: fs, root: root}, nil
}

// NewOsStore creates a store on the real filesystem
func NewOsStore(root string) (*Store, error) {
	return NewStore(afero.NewOsFs(), root)
}

// Path returns the deterministic local path for a project
func (s *Store) Path(projectID string) string {
	return filepath.Join(s.root, domain.LocalFileName(projectID))
}

// Exists reports whether the local file is present
func (s *Store) Exists(projectID string) (bool, error) {
	return afero.Exists(s.fs, s.Path(projectID))
}

// Open opens the local file for reading
func (s *Store) Open(projectID string) (io.ReadCloser, error) {
	f, err := s.fs.Open(s.Path(projectID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoLocalFile, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open project file: %w", err)
	}
	return f, nil
}

// Remove deletes the local file; a missing file is not an error
func (s *Store) Remove(projectID string) error {
	err := s.fs.Remove(s.Path(projectID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove project file: %w", err)
	}
	if err == nil {
		logging.Logger.Info("Removed local project file", "id", projectID)
	}
	return nil
}

// Stage opens a temporary file next to the final path.
// The final path is untouched until Commit renames the temp file over it.
func (s *Store) Stage(projectID string) (ports.StagedFile, error) {
	tmp, err := afero.TempFile(s.fs, s.root, "."+domain.LocalFileName(projectID)+".*.part")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	return &stagedFile{
		fs:     s.fs,
		file:   tmp,
		target: s.Path(projectID),
	}, nil
}

type stagedFile struct {
	fs     afero.Fs
	file   afero.File
	target string

	mu       sync.Mutex
	finished bool
}

func (f *stagedFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Commit flushes the temp file and renames it over the target
func (f *stagedFile) Commit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.finished {
		return errors.New("staged file already finished")
	}
	f.finished = true

	tmpName := f.file.Name()
	if err := f.file.Sync(); err != nil {
		_ = f.file.Close()
		_ = f.fs.Remove(tmpName)
		return fmt.Errorf("failed to sync project file: %w", err)
	}
	if err := f.file.Close(); err != nil {
		_ = f.fs.Remove(tmpName)
		return fmt.Errorf("failed to close project file: %w", err)
	}
	if err := f.fs.Chmod(tmpName, filePerm); err != nil {
		logging.Logger.Debug("Could not set project file mode", "path", tmpName, "error", err)
	}
	if err := f.fs.Rename(tmpName, f.target); err != nil {
		_ = f.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace project file: %w", err)
	}

	logging.Logger.Debug("Replaced project file", "path", f.target)
	return nil
}

// Discard drops the temp file, leaving the target as it was
func (f *stagedFile) Discard() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.finished {
		return nil
	}
	f.finished = true

	_ = f.file.Close()
	if err := f.fs.Remove(f.file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove temporary file: %w", err)
	}
	return nil
}
