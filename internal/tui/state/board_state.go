package state

import (
	"github.com/danielagv/tablero/internal/models"
	"github.com/danielagv/tablero/internal/registry"
)

// ColumnView is one rendered status column on the board.
//
// It owns nothing but a locally filtered copy of the last snapshot it
// received; the registry remains the single source of truth. On every
// notification the card list is rebuilt from scratch rather than
// diffed, so the view can never drift from registry state.
type ColumnView struct {
	status models.Status
	cards  []models.Project
}

// Status returns the status this column displays.
func (v *ColumnView) Status() models.Status {
	return v.status
}

// Title returns the column header text.
func (v *ColumnView) Title() string {
	return v.status.String()
}

// Cards returns the current filtered card list in insertion order.
func (v *ColumnView) Cards() []models.Project {
	return v.cards
}

// Apply rebuilds the card list from a full registry snapshot, keeping
// only projects matching this column's status.
func (v *ColumnView) Apply(snapshot []models.Project) {
	cards := make([]models.Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == v.status {
			cards = append(cards, p)
		}
	}
	v.cards = cards
}

// BoardState holds the two status columns and wires them to the registry.
type BoardState struct {
	columns []*ColumnView
}

// ProjectSource is the subset of the project service the board needs:
// registering its column callbacks and fetching the initial snapshot.
type ProjectSource interface {
	Subscribe(fn registry.Subscriber)
	Projects() []models.Project
}

// NewBoardState creates the Active and Finished column views and
// subscribes each one to the registry. The registry does not invoke
// callbacks at subscribe time, so each view performs its initial load
// here explicitly.
func NewBoardState(src ProjectSource) *BoardState {
	columns := []*ColumnView{
		{status: models.StatusActive},
		{status: models.StatusFinished},
	}

	initial := src.Projects()
	for _, col := range columns {
		src.Subscribe(col.Apply)
		col.Apply(initial)
	}

	return &BoardState{columns: columns}
}

// Columns returns the column views in display order (Active, Finished).
func (s *BoardState) Columns() []*ColumnView {
	return s.columns
}

// Column returns the view at the given display index, or nil when out
// of range.
func (s *BoardState) Column(idx int) *ColumnView {
	if idx < 0 || idx >= len(s.columns) {
		return nil
	}
	return s.columns[idx]
}

// CardAt returns the card at the given column/card position. The second
// return value is false when either index is out of range.
func (s *BoardState) CardAt(columnIdx, cardIdx int) (models.Project, bool) {
	col := s.Column(columnIdx)
	if col == nil {
		return models.Project{}, false
	}
	if cardIdx < 0 || cardIdx >= len(col.cards) {
		return models.Project{}, false
	}
	return col.cards[cardIdx], true
}

// FindCard locates a card by ID across all columns, returning its
// column and card indexes. Used to keep the cursor on a card after it
// moved columns.
func (s *BoardState) FindCard(id string) (columnIdx, cardIdx int, ok bool) {
	for ci, col := range s.columns {
		for pi, card := range col.cards {
			if card.ID == id {
				return ci, pi, true
			}
		}
	}
	return 0, 0, false
}
