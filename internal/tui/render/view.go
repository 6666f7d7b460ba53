// Package render implements the View half of the Model-View-Update
// loop: it turns the current model into terminal output, using lipgloss
// layers for modal overlays on top of the base board.
package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/state"
	"github.com/danielagv/tablero/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of
// the application.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Layer-based rendering: always show the base board with modal
	// overlays stacked on top
	baseView := ViewBoard(m)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(baseView),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		modalLayer = RenderProjectFormLayer(m)
	case state.DetailMode:
		modalLayer = RenderDetailLayer(m)
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}

	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}
