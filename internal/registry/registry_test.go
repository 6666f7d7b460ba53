package registry

import (
	"testing"

	"github.com/danielagv/tablero/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recorder is a subscriber that records every snapshot it receives.
type recorder struct {
	snapshots [][]models.Project
}

func (r *recorder) callback(projects []models.Project) {
	r.snapshots = append(r.snapshots, projects)
}

func (r *recorder) count() int {
	return len(r.snapshots)
}

func (r *recorder) last() []models.Project {
	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

// filterByStatus mimics what a column view does with a snapshot.
func filterByStatus(projects []models.Project, status models.Status) []models.Project {
	var out []models.Project
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// ============================================================================
// ADD
// ============================================================================

// TestAddProject_OrderAndUniqueIDs ensures N adds produce exactly N Active
// projects with distinct IDs, in call order.
func TestAddProject_OrderAndUniqueIDs(t *testing.T) {
	reg := New()

	titles := []string{"first", "second", "third", "fourth"}
	for _, title := range titles {
		reg.AddProject(title, "desc", 2)
	}

	projects := reg.Projects()
	if len(projects) != len(titles) {
		t.Fatalf("Projects() returned %d entries, want %d", len(projects), len(titles))
	}

	seen := make(map[string]bool)
	for i, p := range projects {
		if p.Title != titles[i] {
			t.Errorf("projects[%d].Title = %q, want %q", i, p.Title, titles[i])
		}
		if p.Status != models.StatusActive {
			t.Errorf("projects[%d].Status = %v, want Active", i, p.Status)
		}
		if p.ID == "" {
			t.Errorf("projects[%d].ID is empty", i)
		}
		if seen[p.ID] {
			t.Errorf("duplicate project ID %q", p.ID)
		}
		seen[p.ID] = true
	}
}

// TestAddProject_NotifiesSubscribersInOrder ensures every add fires exactly
// one notification per subscriber, in subscription order.
func TestAddProject_NotifiesSubscribersInOrder(t *testing.T) {
	reg := New()

	var order []string
	reg.Subscribe(func([]models.Project) { order = append(order, "a") })
	reg.Subscribe(func([]models.Project) { order = append(order, "b") })

	reg.AddProject("x", "y", 1)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("notification order = %v, want [a b]", order)
	}
}

// TestAddProject_NoValidation documents the registry's permissiveness:
// empty strings and non-positive people counts are accepted unchanged.
// Input rejection is the service layer's job, never the registry's.
func TestAddProject_NoValidation(t *testing.T) {
	reg := New()

	p := reg.AddProject("", "", 0)
	if p.ID == "" {
		t.Error("AddProject with empty fields did not assign an ID")
	}

	q := reg.AddProject("neg", "", -3)
	if q.People != -3 {
		t.Errorf("People = %d, want -3 passed through untouched", q.People)
	}

	if got := len(reg.Projects()); got != 2 {
		t.Errorf("registry holds %d projects, want 2", got)
	}
}

// ============================================================================
// MOVE
// ============================================================================

// TestMoveProject_AbsentID ensures a move of an unknown ID is a silent no-op:
// MoveNotFound, no snapshot change, no notification.
func TestMoveProject_AbsentID(t *testing.T) {
	reg := New()
	reg.AddProject("only", "d", 1)

	rec := &recorder{}
	reg.Subscribe(rec.callback)

	result := reg.MoveProject("no-such-id", models.StatusFinished)

	if result != MoveNotFound {
		t.Errorf("MoveProject(absent) = %v, want MoveNotFound", result)
	}
	if rec.count() != 0 {
		t.Errorf("notifications fired = %d, want 0", rec.count())
	}
	if reg.Projects()[0].Status != models.StatusActive {
		t.Error("snapshot changed after a not-found move")
	}
}

// TestMoveProject_SameStatus ensures a move to the current status fires
// no notification and reports MoveUnchanged.
func TestMoveProject_SameStatus(t *testing.T) {
	reg := New()
	p := reg.AddProject("idle", "d", 1)

	rec := &recorder{}
	reg.Subscribe(rec.callback)

	result := reg.MoveProject(p.ID, models.StatusActive)

	if result != MoveUnchanged {
		t.Errorf("MoveProject(same status) = %v, want MoveUnchanged", result)
	}
	if rec.count() != 0 {
		t.Errorf("notifications fired = %d, want 0", rec.count())
	}
}

// TestMoveProject_Applied ensures a real move fires exactly one notification
// and the project swaps between the filtered status views.
func TestMoveProject_Applied(t *testing.T) {
	reg := New()
	p := reg.AddProject("mover", "d", 2)

	rec := &recorder{}
	reg.Subscribe(rec.callback)

	result := reg.MoveProject(p.ID, models.StatusFinished)

	if result != MoveApplied {
		t.Fatalf("MoveProject = %v, want MoveApplied", result)
	}
	if rec.count() != 1 {
		t.Fatalf("notifications fired = %d, want exactly 1", rec.count())
	}

	snapshot := rec.last()
	if snapshot[0].Status != models.StatusFinished {
		t.Errorf("snapshot status = %v, want Finished", snapshot[0].Status)
	}
	if n := len(filterByStatus(snapshot, models.StatusActive)); n != 0 {
		t.Errorf("Active view has %d entries after move, want 0", n)
	}
	if n := len(filterByStatus(snapshot, models.StatusFinished)); n != 1 {
		t.Errorf("Finished view has %d entries after move, want 1", n)
	}
}

// ============================================================================
// SUBSCRIPTION SEMANTICS
// ============================================================================

// TestSubscribe_NoImmediateInvocation pins the subscribe policy: a new
// subscriber receives nothing until the next mutation.
func TestSubscribe_NoImmediateInvocation(t *testing.T) {
	reg := New()
	reg.AddProject("pre-existing", "d", 1)

	rec := &recorder{}
	reg.Subscribe(rec.callback)

	if rec.count() != 0 {
		t.Errorf("subscriber invoked %d times at subscribe, want 0", rec.count())
	}
}

// TestSubscribe_DuplicateCallback ensures the same callback registered twice
// is invoked twice per notification; callbacks are not deduplicated.
func TestSubscribe_DuplicateCallback(t *testing.T) {
	reg := New()

	rec := &recorder{}
	reg.Subscribe(rec.callback)
	reg.Subscribe(rec.callback)

	reg.AddProject("dup", "d", 1)

	if rec.count() != 2 {
		t.Errorf("duplicate subscriber invoked %d times, want 2", rec.count())
	}
}

// TestNotify_IsolatesPanickingSubscriber ensures one failing subscriber
// cannot abort the rest of the fan-out round.
func TestNotify_IsolatesPanickingSubscriber(t *testing.T) {
	reg := New()

	reg.Subscribe(func([]models.Project) { panic("broken view") })
	rec := &recorder{}
	reg.Subscribe(rec.callback)

	reg.AddProject("survivor", "d", 1)

	if rec.count() != 1 {
		t.Errorf("subscriber after panicking one invoked %d times, want 1", rec.count())
	}
}

// TestSnapshot_IsDetached ensures mutating a received snapshot does not
// leak back into registry state.
func TestSnapshot_IsDetached(t *testing.T) {
	reg := New()
	reg.AddProject("original", "d", 1)

	snapshot := reg.Projects()
	snapshot[0].Title = "tampered"

	if reg.Projects()[0].Title != "original" {
		t.Error("mutating a snapshot changed registry state")
	}
}

// ============================================================================
// END TO END
// ============================================================================

// TestEndToEnd_AddThenFinish walks the full lifecycle from the board's
// point of view: add a card, see it Active, move it, see it Finished
// with every other field untouched.
func TestEndToEnd_AddThenFinish(t *testing.T) {
	reg := New()

	created := reg.AddProject("Build CLI", "Write a tool", 3)

	snapshot := reg.Projects()
	active := filterByStatus(snapshot, models.StatusActive)
	finished := filterByStatus(snapshot, models.StatusFinished)

	if len(active) != 1 || active[0].Title != "Build CLI" || active[0].People != 3 {
		t.Fatalf("Active view = %+v, want one entry titled 'Build CLI' with 3 people", active)
	}
	if len(finished) != 0 {
		t.Fatalf("Finished view has %d entries before move, want 0", len(finished))
	}

	if result := reg.MoveProject(created.ID, models.StatusFinished); result != MoveApplied {
		t.Fatalf("MoveProject = %v, want MoveApplied", result)
	}

	snapshot = reg.Projects()
	active = filterByStatus(snapshot, models.StatusActive)
	finished = filterByStatus(snapshot, models.StatusFinished)

	if len(active) != 0 {
		t.Errorf("Active view has %d entries after move, want 0", len(active))
	}
	if len(finished) != 1 {
		t.Fatalf("Finished view has %d entries after move, want 1", len(finished))
	}
	got := finished[0]
	if got.Title != "Build CLI" || got.Description != "Write a tool" || got.People != 3 {
		t.Errorf("moved project = %+v, want unchanged title/description/people", got)
	}
	if got.Status != models.StatusFinished {
		t.Errorf("moved project status = %v, want Finished", got.Status)
	}
	if got.ID != created.ID {
		t.Errorf("moved project ID = %q, want %q", got.ID, created.ID)
	}
}
