package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/state"
)

// HandleDetailMode closes the card detail view on any dismiss key.
func HandleDetailMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q", " ":
		m.DetailCardID = ""
		m.UiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// HandleHelpMode closes the help overlay on any dismiss key.
func HandleHelpMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q", "?":
		m.UiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}
