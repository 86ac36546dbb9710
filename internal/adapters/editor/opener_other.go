//go:build !linux && !windows

package editor

import (
	"os"
	"os/exec"
)

var defaultEditors = []string{
	"code",
	"subl",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, []string{path}
		}
	}

	// macOS: open with the default text editor
	if _, err := os.Stat("/usr/bin/open"); err == nil {
		return "open", []string{"-t", path}
	}
	return "", nil
}
