package cmd

import (
	"fmt"

	"github.com/renato0307/tmlsync/internal/theme"
	"github.com/renato0307/tmlsync/version"
)

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Println(theme.AppNameStyle.Render("tmlsync") + " " + theme.VersionStyle.Render(version.Version))
	fmt.Println(theme.TaglineStyle.Render(version.Tagline))
	fmt.Println(version.Info())
	return nil
}
