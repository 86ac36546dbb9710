package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when settings.json leaves a value unset
const (
	DefaultMetadataTimeout = 30 * time.Second
	DefaultTransferTimeout = 5 * time.Minute
	DefaultWorkers         = 4
)

// Settings represents the structure of ~/.tmlsync/settings.json
type Settings struct {
	Debug                  *bool  `json:"debug,omitempty" jsonschema:"description=Enable debug logging"`
	Editor                 string `json:"editor,omitempty" jsonschema:"description=Editor used to open survey files"`
	Email                  string `json:"email,omitempty" jsonschema:"description=Email of the last successful login"`
	MaxLogFiles            *int   `json:"max_log_files,omitempty" jsonschema:"description=Maximum number of debug log files kept,minimum=0"`
	MetadataTimeoutSeconds *int   `json:"metadata_timeout_seconds,omitempty" jsonschema:"description=Timeout for metadata calls,minimum=1"`
	ProjectsDir            string `json:"projects_dir,omitempty" jsonschema:"description=Directory holding the synchronized .tml files"`
	ServerAddress          string `json:"server_address,omitempty" jsonschema:"description=Repository server address"`
	Token                  string `json:"token,omitempty" jsonschema:"description=Authentication token of the last successful login"`
	TransferTimeoutSeconds *int   `json:"transfer_timeout_seconds,omitempty" jsonschema:"description=Timeout for upload and download calls,minimum=1"`
	Workers                *int   `json:"workers,omitempty" jsonschema:"description=Size of the network worker pool,minimum=1"`
}

// MetadataTimeout returns the configured metadata call timeout
func (s *Settings) MetadataTimeout() time.Duration {
	if s.MetadataTimeoutSeconds != nil && *s.MetadataTimeoutSeconds > 0 {
		return time.Duration(*s.MetadataTimeoutSeconds) * time.Second
	}
	return DefaultMetadataTimeout
}

// TransferTimeout returns the configured file transfer timeout
func (s *Settings) TransferTimeout() time.Duration {
	if s.TransferTimeoutSeconds != nil && *s.TransferTimeoutSeconds > 0 {
		return time.Duration(*s.TransferTimeoutSeconds) * time.Second
	}
	return DefaultTransferTimeout
}

// WorkerCount returns the configured worker pool size
func (s *Settings) WorkerCount() int {
	if s.Workers != nil && *s.Workers > 0 {
		return *s.Workers
	}
	return DefaultWorkers
}

// ProjectsRoot returns the directory for synchronized project files
func (s *Settings) ProjectsRoot() string {
	if s.ProjectsDir != "" {
		return ExpandPath(s.ProjectsDir)
	}
	return GetProjectsDir()
}

// LoadSettings loads settings from $TMLSYNC_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from the given path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TMLSYNC_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings to path while holding an exclusive lock on a
// sibling lock file, so concurrent tmlsync processes never interleave writes.
// The file may hold a token and is written with owner-only permissions.
func SaveSettingsTo(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	lock, err := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("failed to open settings lock: %w", err)
	}
	defer lock.Close()

	if err := lockFile(lock); err != nil {
		return fmt.Errorf("failed to acquire settings lock: %w", err)
	}
	defer unlockFile(lock)

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}
