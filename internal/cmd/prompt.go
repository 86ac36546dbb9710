package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

// errNoTerminal is returned when a prompt is needed but stdin is not a terminal
var errNoTerminal = errors.New("confirmation required but no terminal is attached; rerun with --yes")

// isInteractive reports whether prompts can be shown
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// promptConfirmer asks the user through huh confirm dialogs.
// With a dispatcher the dialog runs on the dispatcher's goroutine and the
// caller blocks until it is answered.
type promptConfirmer struct {
	ask         func(ctx context.Context, title, description string) (bool, error)
	assumeYes   bool
	dispatcher  async.Dispatcher
	interactive bool
}

// Verify interface compliance at compile time
var _ ports.Confirmer = (*promptConfirmer)(nil)

// newPromptConfirmer creates a confirmer; dispatcher may be nil for
// one-shot commands that prompt from the calling goroutine
func newPromptConfirmer(assumeYes bool, dispatcher async.Dispatcher) *promptConfirmer {
	return &promptConfirmer{
		ask:         runConfirmForm,
		assumeYes:   assumeYes,
		dispatcher:  dispatcher,
		interactive: isInteractive(),
	}
}

func (c *promptConfirmer) ConfirmSwitch(ctx context.Context, from, to *domain.Project) (bool, error) {
	return c.confirm(ctx,
		fmt.Sprintf("Release the lock on %q and open %q?", from.Name, to.Name),
		"Unsaved edits to the current project will not be uploaded.")
}

func (c *promptConfirmer) ConfirmUnlock(ctx context.Context, project *domain.Project) (bool, error) {
	return c.confirm(ctx,
		fmt.Sprintf("Release the lock on %q?", project.Name),
		"Local changes that were not uploaded will stay on this computer only.")
}

type confirmAnswer struct {
	confirmed bool
	err       error
}

func (c *promptConfirmer) confirm(ctx context.Context, title, description string) (bool, error) {
	if c.assumeYes {
		logging.Logger.Debug("Confirmation assumed", "title", title)
		return true, nil
	}
	if !c.interactive {
		return false, errNoTerminal
	}
	if c.dispatcher == nil {
		return c.answer(ctx, title, description)
	}

	answers := make(chan confirmAnswer, 1)
	c.dispatcher.Post(func() {
		confirmed, err := c.answer(ctx, title, description)
		answers <- confirmAnswer{confirmed: confirmed, err: err}
	})

	select {
	case a := <-answers:
		return a.confirmed, a.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (c *promptConfirmer) answer(ctx context.Context, title, description string) (bool, error) {
	confirmed, err := c.ask(ctx, title, description)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logging.Logger.Info("User answered confirmation", "title", title, "confirmed", confirmed)
	return confirmed, nil
}

func runConfirmForm(ctx context.Context, title, description string) (bool, error) {
	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).RunWithContext(ctx)
	return confirmed, err
}

// inputText prompts for a single line of text
func inputText(ctx context.Context, title, placeholder string, required bool) (string, error) {
	if !isInteractive() {
		return "", errNoTerminal
	}

	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if required {
		field = field.Validate(requireNonBlank)
	}

	if err := huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx); err != nil {
		return "", err
	}
	return value, nil
}

func requireNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}
