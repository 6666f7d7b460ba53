package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/models"
	"github.com/danielagv/tablero/internal/tui/theme"
)

// ColumnProps bundles everything needed to render one status column.
type ColumnProps struct {
	Title        string
	Cards        []models.Project
	Selected     bool   // column holds the cursor
	SelectedCard int    // index of the selected card, -1 if none
	DropTarget   bool   // a grabbed card is hovering over this column
	GrabbedID    string // ID of the grabbed card, "" outside grab mode
	Height       int    // fixed total column height (0 for auto)
	ScrollOffset int    // index of first visible card
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Title, len(props.Cards))
	content := TitleStyle.Render(header) + "\n"

	if len(props.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		if props.DropTarget {
			content += emptyStyle.Render("Drop here")
		} else {
			content += emptyStyle.Render("No projects")
		}
	} else {
		content += renderCards(props)
	}

	style := ColumnStyle
	if props.DropTarget {
		style = DropTargetColumnStyle
	} else if props.Selected {
		style = SelectedColumnStyle
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2) // minus top/bottom border
	}

	return style.Render(content)
}

// renderCards renders the visible slice of cards plus scroll indicators.
func renderCards(props ColumnProps) string {
	availableHeight := props.Height - columnOverhead
	maxVisible := max(availableHeight/CardHeight, 1)

	indicatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	var b strings.Builder

	// Always reserve a line for the top indicator to keep spacing stable
	if props.ScrollOffset > 0 {
		b.WriteString(indicatorStyle.Render("▲ more above") + "\n")
	} else {
		b.WriteString("\n")
	}

	endIdx := min(props.ScrollOffset+maxVisible, len(props.Cards))
	for i := props.ScrollOffset; i < endIdx; i++ {
		card := props.Cards[i]
		selected := props.Selected && i == props.SelectedCard
		grabbed := props.GrabbedID != "" && card.ID == props.GrabbedID
		b.WriteString(RenderCard(card, selected, grabbed))
		b.WriteString("\n")
	}

	if endIdx < len(props.Cards) {
		b.WriteString(indicatorStyle.Render("▼ more below"))
	}

	return b.String()
}

// VisibleCards returns how many cards fit in a column of the given
// total height. Shared with the handlers so cursor movement and
// rendering agree on scroll behavior.
func VisibleCards(height int) int {
	return max((height-columnOverhead)/CardHeight, 1)
}
