package ports

import (
	"context"

	"github.com/renato0307/tmlsync/internal/domain"
)

// SurveyHost is the editing application that owns the survey in memory
type SurveyHost interface {
	// FlushCurrentEdits writes pending edits to the local project file
	FlushCurrentEdits() error
	// LoadLocalFile opens a downloaded project file for editing or viewing
	LoadLocalFile(path string) error
}

// Confirmer asks the user to approve lock-affecting actions
type Confirmer interface {
	ConfirmSwitch(ctx context.Context, from, to *domain.Project) (bool, error)
	ConfirmUnlock(ctx context.Context, project *domain.Project) (bool, error)
}

// SyncListener receives progress and outcome notifications
type SyncListener interface {
	Failed(operation string, err error)
	Log(line string)
	Progress(operation string, active bool)
	Succeeded(operation, message string)
}
