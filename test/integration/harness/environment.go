package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own TMLSYNC_HOME.
type TestEnvironment struct {
	TmlsyncHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp TMLSYNC_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		TmlsyncHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TMLSYNC_* variables and sets:
//   - TMLSYNC_HOME to the temp directory
//   - TMLSYNC_DEBUG to empty string (disables debug logging)
//   - TMLSYNC_EDITOR to "true" (no-op command)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["TMLSYNC_HOME"] = true
	overrideKeys["TMLSYNC_DEBUG"] = true
	overrideKeys["TMLSYNC_EDITOR"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing TMLSYNC_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "TMLSYNC_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"TMLSYNC_HOME="+e.TmlsyncHome,
		"TMLSYNC_DEBUG=",
		"TMLSYNC_EDITOR=true",
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TmlsyncHome, "state.db")
}

// ProjectsDir returns the directory holding synchronized survey files.
func (e *TestEnvironment) ProjectsDir() string {
	return filepath.Join(e.TmlsyncHome, "projects")
}

// ProjectFile returns the local survey file path of a project.
func (e *TestEnvironment) ProjectFile(projectID string) string {
	return filepath.Join(e.ProjectsDir(), projectID+".tml")
}

// WriteProjectFile creates or replaces a local survey file.
func (e *TestEnvironment) WriteProjectFile(projectID string, data []byte) {
	e.tb.Helper()
	if err := os.MkdirAll(e.ProjectsDir(), 0755); err != nil {
		e.tb.Fatalf("Failed to create projects directory: %v", err)
	}
	if err := os.WriteFile(e.ProjectFile(projectID), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write project file: %v", err)
	}
}

// ReadSettings decodes settings.json into a generic map.
func (e *TestEnvironment) ReadSettings() map[string]any {
	e.tb.Helper()
	data, err := os.ReadFile(filepath.Join(e.TmlsyncHome, "settings.json"))
	if err != nil {
		e.tb.Fatalf("Failed to read settings: %v", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		e.tb.Fatalf("Invalid settings.json: %v", err)
	}
	return settings
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
