// Package handlers implements the Update half of the Model-View-Update
// loop: every message the program receives is dispatched here based on
// the current interaction mode.
package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and
// updates the model.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Form mode first - the form needs ALL messages, not just key presses
	if m.UiState.Mode() == state.ProjectFormMode {
		return HandleProjectFormMode(m, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	}

	return nil
}

// HandleKeyMsg routes key presses to the handler for the current mode.
func HandleKeyMsg(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.GrabMode:
		return HandleGrabMode(m, msg)
	case state.DetailMode:
		return HandleDetailMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	default:
		return HandleNormalMode(m, msg)
	}
}
