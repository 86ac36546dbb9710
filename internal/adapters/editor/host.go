package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

// ErrNoEditor is returned when no editor could be resolved
var ErrNoEditor = errors.New("no suitable editor found. Set --editor flag, $TMLSYNC_EDITOR, $VISUAL, or $EDITOR")

// Starter launches an editor process without waiting for it
type Starter func(name string, args ...string) error

// Host opens survey files in an external editor
type Host struct {
	cliEditor string
	fs        afero.Fs
	mu        sync.Mutex
	path      string
	start     Starter
}

// Verify interface compliance at compile time
var _ ports.SurveyHost = (*Host)(nil)

// NewHost creates a Host that launches real editor processes
func NewHost(cliEditor string) *Host {
	return NewHostWith(afero.NewOsFs(), cliEditor, startDetached)
}

// NewHostWith creates a Host with an explicit filesystem and process starter
func NewHostWith(fs afero.Fs, cliEditor string, start Starter) *Host {
	return &Host{
		cliEditor: cliEditor,
		fs:        fs,
		start:     start,
	}
}

// CurrentPath returns the file most recently handed to the editor
func (h *Host) CurrentPath() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.path
}

// LoadLocalFile opens path in an editor.
// Priority: cliEditor → $TMLSYNC_EDITOR → $VISUAL → $EDITOR → platform defaults
func (h *Host) LoadLocalFile(path string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := h.fs.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := findEditor(path, h.cliEditor)
	if editor == "" {
		return ErrNoEditor
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)
	if err := h.start(editor, args...); err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}

	h.mu.Lock()
	h.path = path
	h.mu.Unlock()
	return nil
}

// FlushCurrentEdits forces the loaded file's saved contents to stable storage.
// The editor owns its unsaved buffer; only what it has written is flushed.
func (h *Host) FlushCurrentEdits() error {
	path := h.CurrentPath()
	if path == "" {
		return nil
	}

	f, err := h.fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Debug("Nothing to flush, file is gone", "path", path)
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	logging.Logger.Debug("Flushed local edits", "path", path)
	return nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Editor exited with error", "error", err, "editor", name)
		}
	}()

	return nil
}

// findEditor resolves the editor command. Configured values may carry
// arguments, e.g. "code --wait".
func findEditor(path string, cliEditor string) (string, []string) {
	candidates := []string{
		cliEditor,
		os.Getenv("TMLSYNC_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	}
	for _, candidate := range candidates {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0], append(fields[1:], path)
		}
	}

	return findPlatformEditor(path)
}
