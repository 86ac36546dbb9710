package cmd

import (
	"fmt"

	"github.com/renato0307/tmlsync/internal/config"
)

// LogoutCmd clears the session and the stored token
type LogoutCmd struct{}

// Run executes the logout command
func (l *LogoutCmd) Run(cli *CLI) error {
	cli.Container.SyncService.Logout()

	settings := cli.Container.Settings
	settings.Token = ""
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to clear stored credentials: %w", err)
	}

	fmt.Println("Logged out")
	return nil
}
