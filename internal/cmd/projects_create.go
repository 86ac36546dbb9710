package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/theme"
)

// ProjectsCreateCmd creates a project
type ProjectsCreateCmd struct {
	Country     string `help:"Country code, e.g. FR" required:""`
	Description string `help:"Project description" required:""`
	Format      string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Latitude    string `help:"Optional latitude in decimal degrees"`
	Longitude   string `help:"Optional longitude in decimal degrees"`
	Name        string `arg:"" help:"Project name"`
}

// Run executes the create command
func (c *ProjectsCreateCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing projects create command", "name", c.Name)

	created, err := cli.Container.SyncService.CreateProject(context.Background(), domain.NewProject{
		CountryCode: c.Country,
		Description: c.Description,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Name:        c.Name,
	})
	if err != nil {
		return userError(cli, err)
	}

	if done, err := printStructured(c.Format, newProjectView(*created)); done {
		return err
	}
	fmt.Printf("%s Created project %s (id %s)\n", theme.SuccessStyle.Render("✓"), created.Name, created.ID)
	return nil
}
