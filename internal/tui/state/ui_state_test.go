package state

import "testing"

// TestClampCard_EmptyColumn ensures the cursor resets to 0 when the
// column is empty.
// Edge case: Selected card was deleted or moved away.
func TestClampCard_EmptyColumn(t *testing.T) {
	s := NewUIState()
	s.SetSelectedCard(3)

	s.ClampCard(0)

	if s.SelectedCard() != 0 {
		t.Errorf("SelectedCard after clamp to empty column = %d, want 0", s.SelectedCard())
	}
}

// TestClampCard_PastEnd ensures the cursor snaps to the last card when
// the column shrank below the previous selection.
func TestClampCard_PastEnd(t *testing.T) {
	s := NewUIState()
	s.SetSelectedCard(5)

	s.ClampCard(2)

	if s.SelectedCard() != 1 {
		t.Errorf("SelectedCard after clamp = %d, want 1", s.SelectedCard())
	}
}

// TestGrab_Lifecycle ensures StartGrab records the payload and enters
// GrabMode, and EndGrab clears both.
func TestGrab_Lifecycle(t *testing.T) {
	s := NewUIState()

	s.StartGrab("card-1", 0)

	if s.Mode() != GrabMode {
		t.Errorf("Mode after StartGrab = %v, want GrabMode", s.Mode())
	}
	grab := s.Grab()
	if grab == nil || grab.CardID != "card-1" || grab.OriginColumn != 0 {
		t.Errorf("Grab() = %+v, want payload card-1 from column 0", grab)
	}

	s.EndGrab()

	if s.Mode() != NormalMode {
		t.Errorf("Mode after EndGrab = %v, want NormalMode", s.Mode())
	}
	if s.Grab() != nil {
		t.Error("Grab() after EndGrab is non-nil")
	}
}
