package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/danielagv/tablero/internal/models"
	"github.com/danielagv/tablero/internal/registry"
	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/huhforms"
	"github.com/danielagv/tablero/internal/tui/state"
)

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.AddProject:
		return handleAddProject(m)
	case km.ViewProject:
		return handleViewProject(m)
	case km.GrabCard, " ":
		return handleGrabCard(m)
	case km.MoveCardLeft:
		return handleMoveCard(m, models.StatusActive)
	case km.MoveCardRight:
		return handleMoveCard(m, models.StatusFinished)
	case km.PrevColumn, "left":
		return handleNavigateColumn(m, -1)
	case km.NextColumn, "right":
		return handleNavigateColumn(m, 1)
	case km.PrevCard, "up":
		return handleNavigateCard(m, -1)
	case km.NextCard, "down":
		return handleNavigateCard(m, 1)
	}

	return nil
}

// handleAddProject opens the project creation form.
func handleAddProject(m *tui.Model) tea.Cmd {
	m.FormState.ClearProjectForm()
	m.FormState.ProjectForm = huhforms.CreateProjectForm(
		&m.FormState.FormTitle,
		&m.FormState.FormDescription,
		&m.FormState.FormPeople,
		&m.FormState.FormConfirm,
	)
	m.UiState.SetMode(state.ProjectFormMode)
	return m.FormState.ProjectForm.Init()
}

// handleViewProject opens the detail view for the selected card.
func handleViewProject(m *tui.Model) tea.Cmd {
	card, ok := m.SelectedCard()
	if !ok {
		return nil
	}
	m.DetailCardID = card.ID
	m.UiState.SetMode(state.DetailMode)
	return nil
}

// handleGrabCard picks up the selected card, entering grab mode. The
// card ID is the drag payload carried until the drop.
func handleGrabCard(m *tui.Model) tea.Cmd {
	card, ok := m.SelectedCard()
	if !ok {
		return nil
	}
	m.UiState.StartGrab(card.ID, m.UiState.SelectedColumn())
	return nil
}

// handleMoveCard moves the selected card directly to the given status
// without entering grab mode (keyboard shortcut for a quick drop).
func handleMoveCard(m *tui.Model, status models.Status) tea.Cmd {
	card, ok := m.SelectedCard()
	if !ok {
		return nil
	}
	applyMove(m, card.ID, status)
	return nil
}

// applyMove runs a move through the service and repositions the cursor
// onto the card when it actually changed columns.
func applyMove(m *tui.Model, cardID string, status models.Status) {
	result := m.Service.MoveProject(cardID, status)
	slog.Debug("Move project", "id", cardID, "status", status.String(), "result", result.String())

	switch result {
	case registry.MoveApplied:
		// Follow the card into its new column
		if col, idx, ok := m.Board.FindCard(cardID); ok {
			m.UiState.SetSelectedColumn(col)
			m.UiState.SetSelectedCard(idx)
		}
	case registry.MoveNotFound:
		// The payload went stale; the board state is untouched
		m.NotificationState.Add(state.LevelWarning, "Project no longer exists")
	case registry.MoveUnchanged:
		// Dropping a card on its own column is a no-op
	}
	m.ClampCursor()
}

// handleNavigateColumn moves the column cursor left or right.
func handleNavigateColumn(m *tui.Model, delta int) tea.Cmd {
	idx := m.UiState.SelectedColumn() + delta
	if idx < 0 || idx >= len(m.Board.Columns()) {
		return nil
	}
	m.UiState.SetSelectedColumn(idx)
	m.ClampCursor()
	return nil
}

// handleNavigateCard moves the card cursor up or down within the column.
func handleNavigateCard(m *tui.Model, delta int) tea.Cmd {
	col := m.SelectedColumn()
	if col == nil || len(col.Cards()) == 0 {
		return nil
	}
	idx := m.UiState.SelectedCard() + delta
	if idx < 0 || idx >= len(col.Cards()) {
		return nil
	}
	m.UiState.SetSelectedCard(idx)
	return nil
}
