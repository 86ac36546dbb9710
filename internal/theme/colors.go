package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Lock state colors
const (
	ColorLocked    Color = "2" // Green - lock held by us
	ColorReadOnly  Color = "8" // Gray - never lockable
	ColorTransient Color = "3" // Yellow - acquiring or releasing
	ColorUnlocked  Color = "1" // Red - edits cannot be uploaded
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "46"  // Bright green
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHintKey Color = "226" // Yellow - command hints
	ColorSpinner Color = "205" // Pink - operations in flight
)
