package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"

	adaptereditor "github.com/renato0307/tmlsync/internal/adapters/editor"
	"github.com/renato0307/tmlsync/internal/adapters/watcher"
	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/services"
	"github.com/renato0307/tmlsync/internal/theme"
)

const releaseOnExitTimeout = 15 * time.Second

// Menu actions
const (
	actionLock          = "lock"
	actionQuit          = "quit"
	actionRefresh       = "refresh"
	actionSwitch        = "switch"
	actionUnlock        = "unlock"
	actionUpload        = "upload"
	actionUploadRelease = "upload-release"
)

// EditCmd runs an interactive editing session around one project at a time
type EditCmd struct {
	Editor  string `help:"Editor to open survey files in (overrides $TMLSYNC_EDITOR, $VISUAL, $EDITOR)"`
	Project string `arg:"" optional:"" help:"Project id or name (picked from a list when omitted)"`
}

// editSession is the state of one edit run. Only the goroutine running the
// menu touches it; background work reports back through the dispatcher.
type editSession struct {
	container  *Container
	controller *services.LockController
	dispatcher *async.LoopDispatcher
	listener   *services.DispatchingListener
	projects   []domain.Project
	watcher    *watcher.FileWatcher
}

// Run executes the edit command
func (e *EditCmd) Run(cli *CLI) error {
	if !isInteractive() {
		return errors.New("edit needs an interactive terminal")
	}
	c := cli.Container
	if !c.SyncService.IsAuthenticated() {
		return errors.New("not logged in; run 'tmlsync login' first")
	}

	editorName := e.Editor
	if editorName == "" {
		editorName = c.Settings.Editor
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := async.NewLoopDispatcher(async.DefaultQueueSize)
	console := newConsoleListener(os.Stdout, c.SyncService.Credentials().ServerAddress)
	listener := services.NewDispatchingListener(dispatcher, console)

	s := &editSession{
		container:  c,
		controller: c.NewLockController(adaptereditor.NewHost(editorName), newPromptConfirmer(cli.Yes, dispatcher), listener),
		dispatcher: dispatcher,
		listener:   listener,
	}

	fw, err := watcher.New(watcher.DefaultDebounce, func(path string) {
		if !dispatcher.TryPost(func() { console.Log("Local edits saved to " + path) }) {
			logging.Logger.Debug("Dropped file change notice", "path", path)
		}
	})
	if err != nil {
		logging.Logger.Warn("File watching disabled", "error", err)
	} else {
		s.watcher = fw
		defer fw.Close()
	}
	defer s.shutdown()

	logging.Logger.Info("Starting edit session", "project", e.Project, "editor", editorName)

	if err := s.refreshProjects(ctx); err != nil {
		return err
	}

	project, err := s.initialProject(ctx, e.Project)
	if err != nil || project == nil {
		return err
	}
	s.open(ctx, project)

	return s.loop(ctx)
}

func (s *editSession) initialProject(ctx context.Context, ref string) (*domain.Project, error) {
	if ref == "" {
		return s.pickProject(ctx, "Open which project?")
	}
	for i := range s.projects {
		if s.projects[i].ID == ref || s.projects[i].Name == ref {
			return &s.projects[i], nil
		}
	}
	return nil, fmt.Errorf("no project with id or name %q", ref)
}

// await runs dispatcher callbacks until f's result has been delivered on the loop
func await[T any](s *editSession, f *async.Future[T]) (T, error) {
	var (
		value T
		err   error
	)
	delivered := make(chan struct{})
	f.Then(s.dispatcher, func(v T, e error) {
		value, err = v, e
		close(delivered)
	})
	s.dispatcher.RunUntil(delivered)
	return value, err
}

func (s *editSession) refreshProjects(ctx context.Context) error {
	s.listener.Progress("list projects", true)
	projects, err := await(s, s.container.AsyncSyncService.ListProjects())
	if err != nil {
		s.listener.Failed("list projects", err)
		s.dispatcher.RunPending()
		return errors.New("could not list projects")
	}
	s.projects = projects
	return nil
}

func (s *editSession) open(ctx context.Context, project *domain.Project) {
	result, err := await(s, s.controller.OpenProjectAsync(ctx, project))
	if err != nil || result == nil || result.Declined {
		return
	}
	if s.watcher != nil {
		if err := s.watcher.Watch(s.container.Files.Path(project.ID)); err != nil {
			logging.Logger.Warn("Cannot watch project file", "id", project.ID, "error", err)
		}
	}
}

func (s *editSession) loop(ctx context.Context) error {
	for {
		s.dispatcher.RunPending()
		s.printHeader()

		action, err := s.chooseAction(ctx)
		if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionUpload, actionUploadRelease:
			s.upload(ctx, action == actionUploadRelease)
		case actionUnlock:
			_, _ = await(s, s.controller.UnlockProjectAsync(ctx))
		case actionLock:
			if viewing := s.controller.Snapshot().Viewing; viewing != nil {
				s.open(ctx, viewing)
			}
		case actionSwitch:
			project, err := s.pickProject(ctx, "Switch to which project?")
			if err != nil {
				return err
			}
			if project != nil {
				s.open(ctx, project)
			}
		case actionRefresh:
			if err := s.refreshProjects(ctx); err == nil {
				fmt.Println(renderProjectsTable(s.projects))
			}
		}
	}
}

func (s *editSession) upload(ctx context.Context, release bool) {
	message, err := inputText(ctx, "Commit message", "Describe your changes", true)
	if err != nil {
		return
	}
	if release {
		_, _ = await(s, s.controller.UploadAndReleaseAsync(ctx, message))
		return
	}
	_, _ = await(s, s.controller.UploadProjectAsync(ctx, message))
}

func (s *editSession) printHeader() {
	snap := s.controller.Snapshot()
	state := theme.LockStateStyle(snap.State).Render(string(snap.State))
	if snap.Viewing == nil {
		fmt.Printf("\n%s %s\n", theme.SubtitleStyle.Render("No project open"), state)
		return
	}
	label := snap.Viewing.Name
	if snap.Viewing.IsReadOnly() {
		label += theme.MutedStyle.Render(" (read-only)")
	}
	fmt.Printf("\n%s %s\n", theme.SubtitleStyle.Render(label), state)
}

func (s *editSession) chooseAction(ctx context.Context) (string, error) {
	snap := s.controller.Snapshot()

	var options []huh.Option[string]
	if snap.State == domain.LockLocked {
		options = append(options,
			huh.NewOption("Upload changes", actionUpload),
			huh.NewOption("Upload changes and release lock", actionUploadRelease),
			huh.NewOption("Release lock", actionUnlock),
		)
	} else if snap.Viewing != nil && !snap.Viewing.IsReadOnly() {
		options = append(options, huh.NewOption("Try to lock again", actionLock))
	}
	options = append(options,
		huh.NewOption("Switch project", actionSwitch),
		huh.NewOption("Refresh project list", actionRefresh),
		huh.NewOption("Quit", actionQuit),
	)

	var action string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(options...).
				Value(&action),
		),
	).RunWithContext(ctx)
	return action, err
}

// pickProject returns nil when the user backs out
func (s *editSession) pickProject(ctx context.Context, title string) (*domain.Project, error) {
	if len(s.projects) == 0 {
		fmt.Println(theme.MutedStyle.Render("No projects available"))
		return nil, nil
	}

	options := make([]huh.Option[int], 0, len(s.projects))
	for i, p := range s.projects {
		label := fmt.Sprintf("%s (%s)", p.Name, p.ID)
		if p.IsReadOnly() {
			label += " read-only"
		}
		if p.ActiveMutex != nil {
			label += " locked by " + p.ActiveMutex.User
		}
		options = append(options, huh.NewOption(label, i))
	}

	var index int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Height(12).
				Value(&index),
		),
	).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s.projects[index], nil
}

// shutdown releases a held lock without asking
func (s *editSession) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), releaseOnExitTimeout)
	defer cancel()

	if s.controller.ReleaseIfHeld(ctx) {
		fmt.Println(theme.SuccessStyle.Render("✓ ") + "Lock released")
	}
	s.dispatcher.RunPending()
	s.dispatcher.Stop()
}
