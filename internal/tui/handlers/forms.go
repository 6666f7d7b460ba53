package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/danielagv/tablero/internal/services/project"
	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/state"
)

// HandleProjectFormMode handles all messages while the project form is
// open. Forms need every message, not just key presses.
func HandleProjectFormMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.FormState.ProjectForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	// esc closes the form without submitting
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ClearProjectForm()
			m.UiState.SetMode(state.NormalMode)
			return tea.ClearScreen
		case "ctrl+c":
			return tea.Quit
		}
	}

	// Forward to the form
	model, cmd := m.FormState.ProjectForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.ProjectForm = form
	}

	if m.FormState.ProjectForm.State == huh.StateCompleted {
		completeProjectForm(m)
		m.FormState.ClearProjectForm()
		m.UiState.SetMode(state.NormalMode)
		return tea.ClearScreen
	}

	return cmd
}

// completeProjectForm submits the collected input through the service.
// Validation failures surface as an error banner and never reach the
// registry; the submission is simply dropped.
func completeProjectForm(m *tui.Model) {
	if !m.FormState.FormConfirm {
		return
	}

	people, err := strconv.Atoi(strings.TrimSpace(m.FormState.FormPeople))
	if err != nil {
		m.NotificationState.Add(state.LevelError, "People must be a number")
		return
	}

	created, err := m.Service.CreateProject(project.CreateProjectRequest{
		Title:       m.FormState.FormTitle,
		Description: m.FormState.FormDescription,
		People:      people,
	})
	if err != nil {
		m.NotificationState.Add(state.LevelError, validationMessage(err))
		return
	}

	slog.Info("Project created", "id", created.ID, "title", created.Title)
	m.NotificationState.Add(state.LevelInfo, "Project created: "+created.Title)

	// Put the cursor on the new card
	if col, idx, ok := m.Board.FindCard(created.ID); ok {
		m.UiState.SetSelectedColumn(col)
		m.UiState.SetSelectedCard(idx)
	}
}

// validationMessage maps service errors to user-facing banner text.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, project.ErrEmptyTitle):
		return "Title cannot be empty"
	case errors.Is(err, project.ErrTitleTooLong):
		return "Title is too long"
	case errors.Is(err, project.ErrEmptyDescription):
		return "Description cannot be empty"
	case errors.Is(err, project.ErrDescriptionTooShort):
		return "Description is too short"
	case errors.Is(err, project.ErrDescriptionTooLong):
		return "Description is too long"
	case errors.Is(err, project.ErrTooFewPeople):
		return "Not enough people assigned"
	case errors.Is(err, project.ErrTooManyPeople):
		return "Too many people assigned"
	default:
		return "Could not create project"
	}
}
