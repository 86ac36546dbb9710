//go:build linux

package editor

import (
	"os/exec"
)

var defaultEditors = []string{
	"code",
	"codium",
	"subl",
	"gedit",
	"kate",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, []string{path}
		}
	}

	// Fallback: desktop default handler
	if _, err := exec.LookPath("xdg-open"); err == nil {
		return "xdg-open", []string{path}
	}
	return "", nil
}
