package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/models"
	"github.com/danielagv/tablero/internal/tui/theme"
)

// RenderCard renders a single project as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}             ┃
//	┃ {n} people assigned ┃
//	┃ {description line}  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// The card has a fixed width; grabbed cards get the drop-target border
// so the user can see what they are dragging.
func RenderCard(project models.Project, selected, grabbed bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	title := renderCardTitle(project, bg)
	people := renderCardPeople(project, bg)
	preview := renderCardPreview(project, bg)
	content := title + "\n" + people + "\n" + preview

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if grabbed {
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	} else if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

func renderCardTitle(project models.Project, bg string) string {
	title := project.Title
	if len(title) > cardTitleMaxLength {
		title = title[:cardTitleMaxLength] + "..."
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Width(CardWidth - 2).
		Render(" " + title)
}

func renderCardPeople(project models.Project, bg string) string {
	label := fmt.Sprintf("%d people assigned", project.People)
	if project.People == 1 {
		label = "1 person assigned"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Width(CardWidth - 2).
		Render(" " + label)
}

// renderCardPreview shows the first line of the description; the full
// text lives in the detail view.
func renderCardPreview(project models.Project, bg string) string {
	preview := project.Description
	for i, r := range preview {
		if r == '\n' {
			preview = preview[:i]
			break
		}
	}
	if len(preview) > cardTitleMaxLength {
		preview = preview[:cardTitleMaxLength] + "..."
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Italic(true).
		Width(CardWidth - 2).
		Render(" " + preview)
}
