package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Default navigation mode
	GrabMode                    // A card is grabbed and hovering over a drop target
	ProjectFormMode             // Creating a new project with huh
	DetailMode                  // Full card view with rendered description
	HelpMode                    // Displaying help screen
)

// Grab tracks a card being dragged between columns.
// CardID is the drag payload; OriginColumn is where the card came from
// so a cancelled drop can restore the cursor.
type Grab struct {
	CardID       string
	OriginColumn int
}

// UIState manages the user interface state: cursor position, terminal
// dimensions, the current interaction mode, and any in-flight grab.
type UIState struct {
	// selectedColumn is the index of the currently selected column.
	// In GrabMode it doubles as the hovered drop target.
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	// width and height are the current terminal dimensions in characters
	width  int
	height int

	// mode is the current interaction mode
	mode Mode

	// grab is the in-flight drag, nil outside GrabMode
	grab *Grab
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{}
}

// SelectedColumn returns the index of the selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn sets the selected column index.
func (s *UIState) SetSelectedColumn(idx int) {
	s.selectedColumn = idx
}

// SelectedCard returns the index of the selected card within the column.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard sets the selected card index.
func (s *UIState) SetSelectedCard(idx int) {
	s.selectedCard = idx
}

// ClampCard keeps the card cursor within the given column length.
func (s *UIState) ClampCard(columnLen int) {
	if columnLen == 0 {
		s.selectedCard = 0
		return
	}
	if s.selectedCard >= columnLen {
		s.selectedCard = columnLen - 1
	}
	if s.selectedCard < 0 {
		s.selectedCard = 0
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode sets the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Grab returns the in-flight drag, or nil when nothing is grabbed.
func (s *UIState) Grab() *Grab {
	return s.grab
}

// StartGrab enters GrabMode with the given card as payload.
func (s *UIState) StartGrab(cardID string, originColumn int) {
	s.grab = &Grab{CardID: cardID, OriginColumn: originColumn}
	s.mode = GrabMode
}

// EndGrab leaves GrabMode and clears the payload.
func (s *UIState) EndGrab() {
	s.grab = nil
	s.mode = NormalMode
}
