package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/danielagv/tablero/internal/tui"
)

// HandleGrabMode handles keys while a card is grabbed. The selected
// column acts as the hovered drop target; enter drops the payload there
// and esc cancels the drag entirely.
func HandleGrabMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	grab := m.UiState.Grab()
	if grab == nil {
		// Stale mode without a payload; recover to normal
		m.UiState.EndGrab()
		return nil
	}

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.PrevColumn, "left":
		return handleNavigateColumn(m, -1)
	case km.NextColumn, "right":
		return handleNavigateColumn(m, 1)
	case "enter", km.GrabCard, " ":
		return handleDrop(m)
	case "esc", "q":
		return handleCancelGrab(m)
	case "ctrl+c":
		return tea.Quit
	}

	return nil
}

// handleDrop releases the grabbed card onto the hovered column. A drop
// on the origin column lands as MoveUnchanged in the registry: no
// notification, nothing re-rendered from a state change.
func handleDrop(m *tui.Model) tea.Cmd {
	grab := m.UiState.Grab()
	target := m.Board.Column(m.UiState.SelectedColumn())
	m.UiState.EndGrab()

	if target == nil {
		return nil
	}

	applyMove(m, grab.CardID, target.Status())
	return nil
}

// handleCancelGrab abandons the drag and restores the cursor to the
// card's origin column.
func handleCancelGrab(m *tui.Model) tea.Cmd {
	grab := m.UiState.Grab()
	m.UiState.SetSelectedColumn(grab.OriginColumn)
	m.UiState.EndGrab()

	if col, idx, ok := m.Board.FindCard(grab.CardID); ok {
		m.UiState.SetSelectedColumn(col)
		m.UiState.SetSelectedCard(idx)
	}
	m.ClampCursor()
	return nil
}
