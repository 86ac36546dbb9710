package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tmlsync/internal/config"
	"github.com/renato0307/tmlsync/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Yes         bool             `help:"Answer yes to every confirmation (required without a terminal)" short:"y"`

	Edit        EditCmd     `cmd:"edit" help:"Open a project for editing, holding its lock while you work"`
	Login       LoginCmd    `cmd:"login" help:"Authenticate against a project repository"`
	Logout      LogoutCmd   `cmd:"logout" help:"Forget the stored credentials"`
	Projects    ProjectsCmd `cmd:"projects" help:"List, create and synchronize projects"`
	Settings    SettingsCmd `cmd:"settings" help:"Show settings and their schema"`
	ShowVersion VersionCmd  `cmd:"version" help:"Show version information"`
	Status      StatusCmd   `cmd:"status" help:"Show authentication and local project state"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting if the flag is at its default and no env var is set.
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("TMLSYNC_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("TMLSYNC_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	// Logging first: the container's GORM logger writes through logging.Logger
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("TMLSYNC_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TMLSYNC_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TMLSYNC_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
