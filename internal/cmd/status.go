package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/theme"
)

// StatusCmd shows authentication and the local metadata records
type StatusCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type statusView struct {
	Authenticated bool                 `json:"authenticated" yaml:"authenticated"`
	Projects      []localProjectStatus `json:"projects" yaml:"projects"`
	ProjectsDir   string               `json:"projects_dir" yaml:"projects_dir"`
	Server        string               `json:"server,omitempty" yaml:"server,omitempty"`
}

type localProjectStatus struct {
	HasLocalFile   bool   `json:"has_local_file" yaml:"has_local_file"`
	ID             string `json:"id" yaml:"id"`
	LastDownloaded string `json:"last_downloaded,omitempty" yaml:"last_downloaded,omitempty"`
	LastUploaded   string `json:"last_uploaded,omitempty" yaml:"last_uploaded,omitempty"`
	Name           string `json:"name" yaml:"name"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	c := cli.Container
	creds := c.SyncService.Credentials()

	records, err := c.Metadata.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read local project records: %w", err)
	}

	view := statusView{
		Authenticated: creds.IsAuthenticated(),
		Projects:      make([]localProjectStatus, 0, len(records)),
		ProjectsDir:   c.Settings.ProjectsRoot(),
		Server:        creds.ServerAddress,
	}
	for _, r := range records {
		exists, err := c.Files.Exists(r.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to check local file: %w", err)
		}
		view.Projects = append(view.Projects, localProjectStatus{
			HasLocalFile:   exists,
			ID:             r.ProjectID,
			LastDownloaded: formatOptionalTime(r.LastDownloadedAt),
			LastUploaded:   formatOptionalTime(r.LastUploadedAt),
			Name:           r.Name,
		})
	}

	if done, err := printStructured(s.Format, view); done {
		return err
	}
	printStatus(view)
	return nil
}

func printStatus(view statusView) {
	if view.Authenticated {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Server:"), view.Server)
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Session:"), theme.LockStateStyle(domain.LockLocked).Render("authenticated"))
	} else {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Session:"), theme.LockStateStyle(domain.LockUnlocked).Render("not logged in"))
	}
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Projects dir:"), view.ProjectsDir)

	if len(view.Projects) == 0 {
		fmt.Println(theme.MutedStyle.Render("No projects synchronized yet"))
		return
	}

	fmt.Println()
	for _, p := range view.Projects {
		file := theme.MutedStyle.Render("no local file")
		if p.HasLocalFile {
			file = "local file"
		}
		fmt.Printf("  %s %s  %s  downloaded %s  uploaded %s\n",
			theme.HintKeyStyle.Render(p.ID), p.Name, file,
			orDash(p.LastDownloaded), orDash(p.LastUploaded))
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
