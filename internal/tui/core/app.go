// Package core glues the model, handlers and render packages together
// behind the tea.Model interface.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/danielagv/tablero/internal/config"
	"github.com/danielagv/tablero/internal/services/project"
	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/handlers"
	"github.com/danielagv/tablero/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, svc project.Service, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, svc, cfg)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := handlers.Update(a.model, msg)
	return a, cmd
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
