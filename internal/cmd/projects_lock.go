package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/theme"
)

// ProjectsLockCmd acquires or refreshes a project lock
type ProjectsLockCmd struct {
	Project string `arg:"" help:"Project id or name"`
}

// Run executes the lock command
func (l *ProjectsLockCmd) Run(cli *CLI) error {
	ctx := context.Background()
	sync := cli.Container.SyncService
	logging.Logger.Info("Executing projects lock command", "project", l.Project)

	project, err := resolveProject(ctx, sync, l.Project)
	if err != nil {
		return userError(cli, err)
	}
	if project.IsReadOnly() {
		return fmt.Errorf("%s is read-only; it cannot be locked", project.Name)
	}

	held, err := sync.AcquireOrRefreshProjectMutex(ctx, project)
	if err != nil {
		return userError(cli, err)
	}
	if !held {
		holder := "another user"
		if project.ActiveMutex != nil && project.ActiveMutex.User != "" {
			holder = project.ActiveMutex.User
		}
		return fmt.Errorf("%s is locked by %s", project.Name, holder)
	}

	fmt.Printf("%s Locked %s\n", theme.SuccessStyle.Render("✓"), project.Name)
	return nil
}

// ProjectsUnlockCmd releases a project lock after confirmation
type ProjectsUnlockCmd struct {
	Project string `arg:"" help:"Project id or name"`
}

// Run executes the unlock command
func (u *ProjectsUnlockCmd) Run(cli *CLI) error {
	ctx := context.Background()
	sync := cli.Container.SyncService
	logging.Logger.Info("Executing projects unlock command", "project", u.Project)

	project, err := resolveProject(ctx, sync, u.Project)
	if err != nil {
		return userError(cli, err)
	}

	confirmed, err := newPromptConfirmer(cli.Yes, nil).ConfirmUnlock(ctx, project)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled")
		return nil
	}

	released, err := sync.ReleaseProjectMutex(ctx, project)
	if err != nil {
		return userError(cli, err)
	}
	if !released {
		return fmt.Errorf("the server refused to release the lock on %s", project.Name)
	}

	fmt.Printf("%s Released lock on %s\n", theme.SuccessStyle.Render("✓"), project.Name)
	return nil
}
