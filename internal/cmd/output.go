package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/theme"
)

const timeLayout = "2006-01-02 15:04"

// projectView is the serialized form of a project in json and yaml output
type projectView struct {
	Country      string    `json:"country" yaml:"country"`
	CreationDate time.Time `json:"creation_date" yaml:"creation_date"`
	Description  string    `json:"description" yaml:"description"`
	ID           string    `json:"id" yaml:"id"`
	LockedBy     string    `json:"locked_by,omitempty" yaml:"locked_by,omitempty"`
	ModifiedDate time.Time `json:"modified_date" yaml:"modified_date"`
	Name         string    `json:"name" yaml:"name"`
	Permission   string    `json:"permission" yaml:"permission"`
}

func newProjectView(p domain.Project) projectView {
	view := projectView{
		Country:      p.Country,
		CreationDate: p.CreationDate,
		Description:  p.Description,
		ID:           p.ID,
		ModifiedDate: p.ModifiedDate,
		Name:         p.Name,
		Permission:   string(p.Permission),
	}
	if p.ActiveMutex != nil {
		view.LockedBy = p.ActiveMutex.User
	}
	return view
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

// printStructured prints v as json or yaml and reports whether it did
func printStructured(format string, v any) (bool, error) {
	switch format {
	case "json":
		return true, printJSON(v)
	case "yaml":
		return true, printYAML(v)
	default:
		return false, nil
	}
}

func renderProjectsTable(projects []domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		lockedBy := "-"
		if p.ActiveMutex != nil {
			lockedBy = p.ActiveMutex.User
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Country,
			string(p.Permission),
			lockedBy,
			formatTime(p.ModifiedDate),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorderStyle).
		Headers("ID", "NAME", "COUNTRY", "PERMISSION", "LOCKED BY", "MODIFIED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle
			}
			if col == 3 && row >= 0 && row < len(projects) {
				return theme.PermissionStyle(projects[row].Permission).Padding(0, 1)
			}
			return theme.CellStyle
		}).
		Render()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
