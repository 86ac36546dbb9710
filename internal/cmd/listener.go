package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/ports"
	"github.com/renato0307/tmlsync/internal/theme"
)

// consoleListener prints controller notifications to a terminal
type consoleListener struct {
	mu     sync.Mutex
	out    io.Writer
	server string
}

// Verify interface compliance at compile time
var _ ports.SyncListener = (*consoleListener)(nil)

func newConsoleListener(out io.Writer, server string) *consoleListener {
	return &consoleListener{out: out, server: server}
}

func (l *consoleListener) Failed(operation string, err error) {
	message := errclass.UserMessage(err, l.server)
	l.println(theme.ErrorStyle.Render("✗ "+operation+" failed") + "\n" + indent(message))
}

func (l *consoleListener) Log(line string) {
	l.println(theme.MutedStyle.Render(line))
}

func (l *consoleListener) Progress(operation string, active bool) {
	if active {
		l.println(theme.ProgressStyle.Render("… " + operation))
	}
}

func (l *consoleListener) Succeeded(operation, message string) {
	if message == "" {
		message = operation
	}
	l.println(theme.SuccessStyle.Render("✓ ") + message)
}

func (l *consoleListener) println(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, s)
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
