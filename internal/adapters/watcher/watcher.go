package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/tmlsync/internal/logging"
)

// DefaultDebounce collapses the burst of events an editor produces on save
const DefaultDebounce = 250 * time.Millisecond

// FileWatcher reports changes to a single file. The parent directory is
// watched so that editors saving through rename are still seen.
type FileWatcher struct {
	debounce time.Duration
	dir      string
	done     chan struct{}
	mu       sync.Mutex
	onChange func(path string)
	target   string
	timer    *time.Timer
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
}

// New creates a FileWatcher that calls onChange on its own goroutine
func New(debounce time.Duration, onChange func(path string)) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw := &FileWatcher{
		debounce: debounce,
		done:     make(chan struct{}),
		onChange: onChange,
		watcher:  w,
	}
	fw.wg.Add(1)
	go fw.run()
	return fw, nil
}

// Watch switches the watched file to path
func (fw *FileWatcher) Watch(path string) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if dir != fw.dir {
		if fw.dir != "" {
			if err := fw.watcher.Remove(fw.dir); err != nil {
				logging.Logger.Debug("Failed to stop watching directory", "dir", fw.dir, "error", err)
			}
		}
		if err := fw.watcher.Add(dir); err != nil {
			fw.dir = ""
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		fw.dir = dir
	}
	fw.target = path
	logging.Logger.Debug("Watching file", "path", path)
	return nil
}

// Close stops the watcher and waits for the event loop to exit
func (fw *FileWatcher) Close() error {
	select {
	case <-fw.done:
		return nil
	default:
	}
	close(fw.done)
	err := fw.watcher.Close()
	fw.wg.Wait()

	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return err
}

func (fw *FileWatcher) run() {
	defer fw.wg.Done()
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handle(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("File watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if filepath.Clean(event.Name) != fw.target {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	target := fw.target
	fw.timer = time.AfterFunc(fw.debounce, func() {
		select {
		case <-fw.done:
		default:
			fw.onChange(target)
		}
	})
}
