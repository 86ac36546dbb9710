package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/services"
	"github.com/renato0307/tmlsync/internal/theme"
)

// ProjectsDownloadCmd replaces the local survey file with the repository copy
type ProjectsDownloadCmd struct {
	RetryFlags
	Project string `arg:"" help:"Project id or name"`
}

// Run executes the download command
func (d *ProjectsDownloadCmd) Run(cli *CLI) error {
	ctx := context.Background()
	sync := cli.Container.SyncService
	logging.Logger.Info("Executing projects download command", "project", d.Project)

	project, err := resolveProject(ctx, sync, d.Project)
	if err != nil {
		return userError(cli, err)
	}

	if _, err := sync.ReconcileMetadata(ctx, project); err != nil {
		logging.Logger.Warn("Metadata reconciliation failed", "id", project.ID, "error", err)
	}

	result, err := services.WithRetry(ctx, d.Retries, d.RetryDelay, func(ctx context.Context) (*services.DownloadResult, error) {
		return sync.DownloadProject(ctx, project)
	})
	if err != nil {
		return userError(cli, err)
	}

	switch {
	case result.Exists:
		fmt.Printf("%s Downloaded %s to %s\n", theme.SuccessStyle.Render("✓"), project.Name, result.Path)
	case result.Empty:
		fmt.Printf("%s has no content yet\n", project.Name)
	default:
		fmt.Printf("%s has no file in the repository yet\n", project.Name)
	}
	return nil
}

// ProjectsUploadCmd sends the local survey file. The lock is acquired or
// refreshed first and is kept afterwards unless --release is given.
type ProjectsUploadCmd struct {
	RetryFlags
	Message string `help:"Commit message describing the change" short:"m" required:""`
	Project string `arg:"" help:"Project id or name"`
	Release bool   `help:"Release the lock after a successful upload"`
}

// Run executes the upload command
func (u *ProjectsUploadCmd) Run(cli *CLI) error {
	ctx := context.Background()
	sync := cli.Container.SyncService
	logging.Logger.Info("Executing projects upload command", "project", u.Project, "release", u.Release)

	project, err := resolveProject(ctx, sync, u.Project)
	if err != nil {
		return userError(cli, err)
	}

	_, err = services.WithRetry(ctx, u.Retries, u.RetryDelay, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, sync.UploadProject(ctx, u.Message, project)
	})
	if err != nil {
		return userError(cli, err)
	}
	fmt.Printf("%s Uploaded %s\n", theme.SuccessStyle.Render("✓"), project.Name)

	if !u.Release {
		return nil
	}
	released, err := sync.ReleaseProjectMutex(ctx, project)
	if err != nil {
		return userError(cli, err)
	}
	if !released {
		return fmt.Errorf("uploaded, but the server refused to release the lock on %s", project.Name)
	}
	fmt.Printf("%s Released lock on %s\n", theme.SuccessStyle.Render("✓"), project.Name)
	return nil
}
