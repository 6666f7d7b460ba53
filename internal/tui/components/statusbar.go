package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps bundles status bar inputs.
type StatusBarProps struct {
	Width    int
	Grabbing bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: app name, or a grab-mode hint while a card is held
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Tablero - Project Board"
	if props.Grabbing {
		leftText = "Grabbed: h/l to move, enter to drop, esc to cancel"
	}
	rightText := "press ? for help"

	leftRendered := StatusBarStyle.Render(leftText)
	rightRendered := StatusBarStyle.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
