package config

import (
	"os"
	"path/filepath"
)

// GetHome returns TMLSYNC_HOME or ~/.tmlsync default
func GetHome() string {
	home := os.Getenv("TMLSYNC_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tmlsync"
		}
		return filepath.Join(homeDir, ".tmlsync")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TMLSYNC_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetProjectsDir returns $TMLSYNC_HOME/projects
func GetProjectsDir() string {
	return filepath.Join(GetHome(), "projects")
}

// GetSettingsPath returns $TMLSYNC_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
