package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/tmlsync/internal/domain"
)

// Main UI styles
var (
	HintKeyStyle = lipgloss.NewStyle().Foreground(ColorHintKey).Bold(true)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	NormalStyle  = lipgloss.NewStyle().Foreground(ColorNormal)
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(1, 0)
)

// Header styles
var (
	AppNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	TaglineStyle  = lipgloss.NewStyle().Foreground(ColorNormal)
	VersionStyle  = lipgloss.NewStyle().Foreground(ColorVersion)
)

// Listener styles
var (
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	ProgressStyle = lipgloss.NewStyle().Foreground(ColorSpinner)
	SuccessStyle  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
)

// Table styles
var (
	CellStyle        = lipgloss.NewStyle().Foreground(ColorNormal).Padding(0, 1)
	HeaderStyle      = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Padding(0, 1)
	TableBorderStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// LockStateStyle returns the style used to render a lock state
func LockStateStyle(state domain.LockState) lipgloss.Style {
	switch {
	case state == domain.LockLocked:
		return lipgloss.NewStyle().Foreground(ColorLocked).Bold(true)
	case state.IsTransient():
		return lipgloss.NewStyle().Foreground(ColorTransient)
	default:
		return lipgloss.NewStyle().Foreground(ColorUnlocked)
	}
}

// PermissionStyle returns the style used to render a project permission
func PermissionStyle(permission domain.Permission) lipgloss.Style {
	if permission.CanWrite() {
		return lipgloss.NewStyle().Foreground(ColorNormal)
	}
	return lipgloss.NewStyle().Foreground(ColorReadOnly)
}
