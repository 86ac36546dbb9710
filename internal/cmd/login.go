package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/tmlsync/internal/config"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/theme"
)

// LoginCmd authenticates and stores the resulting credentials
type LoginCmd struct {
	Email    string `help:"Account email (prompted when neither email nor token is given)"`
	Password string `help:"Account password (prompted when omitted)" env:"TMLSYNC_PASSWORD"`
	Server   string `help:"Repository server address, e.g. repo.example.com or localhost:8000" env:"TMLSYNC_SERVER"`
	Token    string `help:"Pre-issued 40 character token, used instead of email and password" env:"TMLSYNC_TOKEN"`
}

// Run executes the login command
func (l *LoginCmd) Run(cli *CLI) error {
	ctx := context.Background()
	settings := cli.Container.Settings

	req := domain.LoginRequest{
		Email:         l.Email,
		Password:      l.Password,
		ServerAddress: l.Server,
		Token:         l.Token,
	}
	if req.ServerAddress == "" {
		req.ServerAddress = settings.ServerAddress
	}
	if req.Email == "" && !req.UsesToken() {
		req.Email = settings.Email
	}

	if needsPrompt(req) {
		if err := promptLogin(ctx, &req); err != nil {
			return err
		}
	}

	logging.Logger.Info("Executing login command", "server", req.ServerAddress, "with_token", req.UsesToken())
	if err := cli.Container.SyncService.Authenticate(ctx, req); err != nil {
		forgetToken(settings)
		return errors.New(errclass.UserMessage(err, req.ServerAddress))
	}

	creds := cli.Container.SyncService.Credentials()
	settings.ServerAddress = creds.ServerAddress
	settings.Token = creds.Token
	if !req.UsesToken() {
		settings.Email = strings.TrimSpace(req.Email)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("logged in but failed to store credentials: %w", err)
	}

	fmt.Printf("%s Logged in to %s\n", theme.SuccessStyle.Render("✓"), creds.ServerAddress)
	return nil
}

// forgetToken drops the stored token after a failed login
func forgetToken(settings *config.Settings) {
	if settings.Token == "" {
		return
	}
	settings.Token = ""
	if err := config.SaveSettings(settings); err != nil {
		logging.Logger.Warn("Failed to clear stored token", "error", err)
	}
}

func needsPrompt(req domain.LoginRequest) bool {
	if strings.TrimSpace(req.ServerAddress) == "" {
		return true
	}
	if req.UsesToken() {
		return false
	}
	return strings.TrimSpace(req.Email) == "" || req.Password == ""
}

func promptLogin(ctx context.Context, req *domain.LoginRequest) error {
	if !isInteractive() {
		return errors.New("missing login details and no terminal to prompt; pass --server with --token or --email and --password")
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Server").
			Placeholder("repo.example.com").
			Value(&req.ServerAddress).
			Validate(func(s string) error {
				_, err := domain.NormalizeServerAddress(s)
				return err
			}),
	}
	if !req.UsesToken() {
		fields = append(fields,
			huh.NewInput().
				Title("Email").
				Value(&req.Email).
				Validate(requireNonBlank),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password).
				Validate(requireNonBlank),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx)
}
