package tui

import (
	"github.com/charmbracelet/lipgloss"

	"ked/config"
)

// Styles contains all the styles used by the view
type Styles struct {
	// The theme these styles were generated from
	Theme config.Theme

	// Tab line styles
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Status bar styles
	StatusBar        lipgloss.Style
	StatusMode       lipgloss.Style
	StatusModeInsert lipgloss.Style

	// Editor styles
	Selection lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates a Styles configuration from a theme
func NewStyles(theme config.Theme) Styles {
	ui := theme.UI

	return Styles{
		Theme: theme,

		Tab: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.TabBg)).
			Foreground(lipgloss.Color(ui.TabFg)).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.TabBg)).
			Foreground(lipgloss.Color(ui.TabActiveFg)).
			Bold(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.StatusFg)),

		StatusMode: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.StatusAccent)).
			Bold(true),

		StatusModeInsert: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.InsertAccent)).
			Bold(true),

		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.SelectionBg)).
			Foreground(lipgloss.Color(ui.SelectionFg)),

		Error: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.ErrorBg)).
			Foreground(lipgloss.Color(ui.ErrorFg)).
			Bold(true),
	}
}
