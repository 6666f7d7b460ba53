package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/tui/state"
)

// RenderInline renders a compact single-line notification for the header bar
func RenderInline(severity Severity, message string) string {
	s := severity.style()

	content := s.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return RenderInline(Warning, n.Message)
	case state.LevelError:
		return RenderInline(Error, n.Message)
	default:
		return RenderInline(Info, n.Message)
	}
}
