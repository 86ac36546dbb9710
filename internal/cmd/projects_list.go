package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/services"
	"github.com/renato0307/tmlsync/internal/theme"
)

// ProjectsListCmd lists the projects visible to the user
type ProjectsListCmd struct {
	RetryFlags
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the list command
func (l *ProjectsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing projects list command")

	projects, err := services.WithRetry(ctx, l.Retries, l.RetryDelay, func(ctx context.Context) ([]domain.Project, error) {
		return cli.Container.AsyncSyncService.ListProjects().Wait(ctx)
	})
	if err != nil {
		return userError(cli, err)
	}

	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	if done, err := printStructured(l.Format, views); done {
		return err
	}

	if len(projects) == 0 {
		fmt.Println(theme.MutedStyle.Render("No projects"))
		return nil
	}
	fmt.Println(renderProjectsTable(projects))
	return nil
}
