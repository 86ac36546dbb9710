package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/services"
)

// ProjectsCmd manages repository projects
type ProjectsCmd struct {
	Create   ProjectsCreateCmd   `cmd:"create" help:"Create a project"`
	Download ProjectsDownloadCmd `cmd:"download" help:"Download a project's survey file"`
	List     ProjectsListCmd     `cmd:"list" aliases:"ls" help:"List projects" default:"1"`
	Lock     ProjectsLockCmd     `cmd:"lock" help:"Acquire or refresh a project lock"`
	Unlock   ProjectsUnlockCmd   `cmd:"unlock" help:"Release a project lock"`
	Upload   ProjectsUploadCmd   `cmd:"upload" help:"Upload a project's survey file"`
}

// RetryFlags are shared by commands whose network call may be retried
type RetryFlags struct {
	Retries    int           `help:"Attempts for unreachable or failing servers" default:"1"`
	RetryDelay time.Duration `help:"Delay before the first retry, doubled after each attempt" default:"2s"`
}

// userError turns a service error into the text shown on the terminal
func userError(cli *CLI, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(errclass.UserMessage(err, cli.Container.SyncService.Credentials().ServerAddress))
}

// resolveProject finds a project by id or, failing that, by exact name
func resolveProject(ctx context.Context, sync *services.SyncService, ref string) (*domain.Project, error) {
	projects, err := sync.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	var byName []domain.Project
	for _, p := range projects {
		if p.ID == ref {
			return &p, nil
		}
		if strings.EqualFold(p.Name, ref) {
			byName = append(byName, p)
		}
	}

	switch len(byName) {
	case 0:
		return nil, errclass.New(errclass.KindNotFound, "find project", fmt.Sprintf("no project with id or name %q", ref), nil)
	case 1:
		return &byName[0], nil
	default:
		return nil, errclass.New(errclass.KindValidation, "find project",
			fmt.Sprintf("%d projects are named %q; use the project id", len(byName), ref), nil)
	}
}
