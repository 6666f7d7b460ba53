package render

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/components"
	"github.com/danielagv/tablero/internal/tui/layers"
	"github.com/danielagv/tablero/internal/tui/theme"
)

// RenderProjectFormLayer renders the project creation form modal as a layer
func RenderProjectFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.ProjectForm == nil {
		return nil
	}

	formView := m.FormState.ProjectForm.View()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Create))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("New Project"),
		"",
		formView,
	)

	formBox := components.FormBoxStyle.
		Width(m.UiState.Width() / 2).
		Render(content)

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// RenderDetailLayer renders the full card view with the description
// rendered as markdown.
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	card, ok := m.DetailCard()
	if !ok {
		return nil
	}

	boxWidth := m.UiState.Width() * 2 / 3

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	people := fmt.Sprintf("%d people assigned", card.People)
	if card.People == 1 {
		people = "1 person assigned"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(card.Title),
		metaStyle.Render(card.Status.String()+"  ·  "+people),
		"",
		components.RenderDescription(components.DescriptionProps{
			Description: card.Description,
			Width:       boxWidth - 6,
		}),
		"",
		metaStyle.Render("esc to close"),
	)

	detailBox := components.DetailBoxStyle.
		Width(boxWidth).
		Render(content)

	return layers.CreateCenteredLayer(detailBox, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the keyboard shortcuts help screen as a layer
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(generateHelpText(m))

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func generateHelpText(m *tui.Model) string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`TABLERO - Keyboard Shortcuts

PROJECTS
  %s      Add new project
  %s  View project details
  %s      Grab card (then %s/%s to move, enter to drop)
  %s      Move card to Active
  %s      Move card to Finished

NAVIGATION
  %s      Previous column
  %s      Next column
  %s      Previous card
  %s      Next card

OTHER
  %s      Show this help
  %s      Quit

Press esc to close`,
		km.AddProject,
		km.ViewProject,
		km.GrabCard, km.PrevColumn, km.NextColumn,
		km.MoveCardLeft,
		km.MoveCardRight,
		km.PrevColumn,
		km.NextColumn,
		km.PrevCard,
		km.NextCard,
		km.ShowHelp,
		km.Quit,
	)
}
