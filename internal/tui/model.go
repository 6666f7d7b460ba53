// Package tui holds the Bubble Tea application model. The model itself
// is plain state; message handling lives in handlers and drawing in
// render, with core wiring the three together behind tea.Model.
package tui

import (
	"context"

	"github.com/danielagv/tablero/internal/config"
	"github.com/danielagv/tablero/internal/models"
	"github.com/danielagv/tablero/internal/services/project"
	"github.com/danielagv/tablero/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Config  *config.Config
	Service project.Service

	Board             *state.BoardState
	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	// DetailCardID is the card shown in the detail view, "" otherwise
	DetailCardID string
}

// InitialModel creates the TUI model and wires the column views to the
// registry through the service. The board views subscribe here, once,
// for the life of the process.
func InitialModel(ctx context.Context, svc project.Service, cfg *config.Config) Model {
	return Model{
		Ctx:               ctx,
		Config:            cfg,
		Service:           svc,
		Board:             state.NewBoardState(svc),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
	}
}

// SelectedColumn returns the column view holding the cursor.
func (m *Model) SelectedColumn() *state.ColumnView {
	return m.Board.Column(m.UiState.SelectedColumn())
}

// SelectedCard returns the card under the cursor. The second return
// value is false when the selected column is empty.
func (m *Model) SelectedCard() (models.Project, bool) {
	return m.Board.CardAt(m.UiState.SelectedColumn(), m.UiState.SelectedCard())
}

// DetailCard resolves the card shown in the detail view.
func (m *Model) DetailCard() (models.Project, bool) {
	if m.DetailCardID == "" {
		return models.Project{}, false
	}
	col, idx, ok := m.Board.FindCard(m.DetailCardID)
	if !ok {
		return models.Project{}, false
	}
	return m.Board.CardAt(col, idx)
}

// ClampCursor keeps the card cursor valid after the selected column's
// contents changed underneath it.
func (m *Model) ClampCursor() {
	col := m.SelectedColumn()
	if col == nil {
		return
	}
	m.UiState.ClampCard(len(col.Cards()))
}
