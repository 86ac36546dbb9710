package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/tmlsync/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Schema SettingsSchemaCmd `cmd:"schema" help:"Print the JSON schema of settings.json"`
	Show   SettingsShowCmd   `cmd:"show" help:"Show the settings file location and effective values" default:"1"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type settingsView struct {
	Debug           bool   `json:"debug" yaml:"debug"`
	Editor          string `json:"editor,omitempty" yaml:"editor,omitempty"`
	Email           string `json:"email,omitempty" yaml:"email,omitempty"`
	LoggedIn        bool   `json:"logged_in" yaml:"logged_in"`
	MetadataTimeout string `json:"metadata_timeout" yaml:"metadata_timeout"`
	ProjectsDir     string `json:"projects_dir" yaml:"projects_dir"`
	ServerAddress   string `json:"server_address,omitempty" yaml:"server_address,omitempty"`
	SettingsFile    string `json:"settings_file" yaml:"settings_file"`
	TransferTimeout string `json:"transfer_timeout" yaml:"transfer_timeout"`
	Workers         int    `json:"workers" yaml:"workers"`
}

// Run executes the show command. The token itself is never printed.
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	view := settingsView{
		Debug:           settings.Debug != nil && *settings.Debug,
		Editor:          settings.Editor,
		Email:           settings.Email,
		LoggedIn:        settings.Token != "",
		MetadataTimeout: settings.MetadataTimeout().String(),
		ProjectsDir:     settings.ProjectsRoot(),
		ServerAddress:   settings.ServerAddress,
		SettingsFile:    config.GetSettingsPath(),
		TransferTimeout: settings.TransferTimeout().String(),
		Workers:         settings.WorkerCount(),
	}

	if done, err := printStructured(s.Format, view); done {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "settings file\t%s\n", view.SettingsFile)
	fmt.Fprintf(w, "server_address\t%s\n", orDash(view.ServerAddress))
	fmt.Fprintf(w, "email\t%s\n", orDash(view.Email))
	fmt.Fprintf(w, "logged in\t%t\n", view.LoggedIn)
	fmt.Fprintf(w, "projects_dir\t%s\n", view.ProjectsDir)
	fmt.Fprintf(w, "editor\t%s\n", orDash(view.Editor))
	fmt.Fprintf(w, "workers\t%d\n", view.Workers)
	fmt.Fprintf(w, "metadata timeout\t%s\n", view.MetadataTimeout)
	fmt.Fprintf(w, "transfer timeout\t%s\n", view.TransferTimeout)
	fmt.Fprintf(w, "debug\t%t\n", view.Debug)
	return w.Flush()
}

// SettingsSchemaCmd prints the settings JSON schema
type SettingsSchemaCmd struct{}

// Run executes the schema command
func (s *SettingsSchemaCmd) Run(cli *CLI) error {
	data, err := config.SettingsSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
