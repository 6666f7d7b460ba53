package render

import (
	"charm.land/lipgloss/v2"

	"github.com/danielagv/tablero/internal/tui"
	"github.com/danielagv/tablero/internal/tui/components"
	"github.com/danielagv/tablero/internal/tui/notifications"
	"github.com/danielagv/tablero/internal/tui/theme"
)

// headerChromeLines is the vertical space taken by the header and the
// status bar around the columns.
const headerChromeLines = 4

// getInlineNotification returns the inline notification content for the
// header bar, or empty string if there is none.
func getInlineNotification(m *tui.Model) string {
	if !m.NotificationState.HasAny() {
		return ""
	}
	all := m.NotificationState.All()
	return notifications.RenderInlineFromState(all[len(all)-1])
}

// ViewBoard renders the two status columns side by side with the app
// header above and the status bar below.
func ViewBoard(m *tui.Model) string {
	columnHeight := m.UiState.Height() - headerChromeLines

	grab := m.UiState.Grab()
	grabbedID := ""
	if grab != nil {
		grabbedID = grab.CardID
	}

	var columns []string
	for i, col := range m.Board.Columns() {
		isSelected := i == m.UiState.SelectedColumn()

		selectedCard := -1
		if isSelected && grab == nil {
			selectedCard = m.UiState.SelectedCard()
		}

		// While grabbing, the cursor column is the hovered drop target
		isDropTarget := grab != nil && isSelected

		scrollOffset := 0
		if isSelected && grab == nil {
			visible := components.VisibleCards(columnHeight)
			if m.UiState.SelectedCard() >= visible {
				scrollOffset = m.UiState.SelectedCard() - visible + 1
			}
		}

		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Title:        col.Title(),
			Cards:        col.Cards(),
			Selected:     isSelected,
			SelectedCard: selectedCard,
			DropTarget:   isDropTarget,
			GrabbedID:    grabbedID,
			Height:       columnHeight,
			ScrollOffset: scrollOffset,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	header := renderHeader(m)
	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:    m.UiState.Width(),
		Grabbing: grab != nil,
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, board, footer)
}

// renderHeader renders the app title plus any inline notification.
func renderHeader(m *tui.Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1).
		Render("Tablero")

	banner := getInlineNotification(m)
	if banner == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", banner)
}
