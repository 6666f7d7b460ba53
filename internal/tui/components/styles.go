// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/config/colors"
	"github.com/danielagv/tablero/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// DropTargetColumnStyle marks the column a grabbed card hovers over
	DropTargetColumnStyle lipgloss.Style

	// SelectedColumnStyle marks the column holding the cursor
	SelectedColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual project cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// FormBoxStyle defines the base style for the project form (green border)
	FormBoxStyle lipgloss.Style

	// DetailBoxStyle defines the base style for the card detail view
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	DropTargetColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.DropTarget))

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		BorderBackground(lipgloss.Color(theme.CardBg)).
		Background(lipgloss.Color(theme.CardBg)).
		Padding(0).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
