// Package registry holds the authoritative in-memory list of projects
// and fans out change notifications to subscribed views.
package registry

import (
	"log/slog"

	"github.com/danielagv/tablero/internal/models"
	"github.com/google/uuid"
)

// Subscriber is a callback invoked with a full snapshot of all projects
// whenever registry state changes. The snapshot is a fresh copy per
// subscriber; callbacks may keep it but must not expect later mutations
// to show up in it.
type Subscriber func(projects []models.Project)

// MoveResult reports the outcome of a MoveProject call.
type MoveResult int

const (
	// MoveApplied means the project was found and its status changed
	MoveApplied MoveResult = iota
	// MoveUnchanged means the project was found already in the target status
	MoveUnchanged
	// MoveNotFound means no project with the given ID exists
	MoveNotFound
)

// String returns a short name for the result, used in logs.
func (r MoveResult) String() string {
	switch r {
	case MoveApplied:
		return "applied"
	case MoveUnchanged:
		return "unchanged"
	case MoveNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Registry is the single source of truth for all projects.
//
// It keeps projects in insertion order and notifies subscribers
// synchronously, in subscription order, after every mutation. Exactly
// one Registry is constructed in main and handed to every consumer;
// there is no hidden package-level instance.
//
// The registry is not safe for concurrent use. All calls are expected
// to happen on the Bubble Tea update goroutine, which serializes them
// the same way a browser event loop would.
type Registry struct {
	projects    []models.Project
	subscribers []Subscriber
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Subscribe registers a callback to be invoked on every state change.
//
// The callback is NOT invoked at subscribe time; a view that needs an
// initial render must call Projects itself. Subscribing the same
// callback twice registers it twice. There is no unsubscribe; the
// registry and its subscribers live for the whole process.
func (r *Registry) Subscribe(fn Subscriber) {
	r.subscribers = append(r.subscribers, fn)
}

// Projects returns a snapshot of all projects in insertion order.
func (r *Registry) Projects() []models.Project {
	return r.snapshot()
}

// AddProject creates a new Active project with a fresh unique ID,
// appends it to the end of the sequence, and notifies all subscribers
// before returning.
//
// The registry performs no validation: empty titles and non-positive
// people counts are accepted as-is. Rejecting bad input is the
// caller's job (see services/project).
func (r *Registry) AddProject(title, description string, people int) models.Project {
	project := models.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      models.StatusActive,
	}
	r.projects = append(r.projects, project)
	r.notify()
	return project
}

// MoveProject changes the status of the project with the given ID.
//
// Subscribers are notified only when the status actually changed;
// a move to the current status or a move of an unknown ID leaves
// the sequence untouched and fires nothing.
func (r *Registry) MoveProject(id string, status models.Status) MoveResult {
	for i := range r.projects {
		if r.projects[i].ID != id {
			continue
		}
		if r.projects[i].Status == status {
			return MoveUnchanged
		}
		r.projects[i].Status = status
		r.notify()
		return MoveApplied
	}
	return MoveNotFound
}

// snapshot returns a copy of the project sequence. Projects are value
// structs, so the copy is fully detached from registry state.
func (r *Registry) snapshot() []models.Project {
	out := make([]models.Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// notify invokes every subscriber in subscription order with its own
// snapshot. Each call is isolated: a panicking subscriber is logged
// and the remaining subscribers still run.
func (r *Registry) notify() {
	for _, fn := range r.subscribers {
		r.notifyOne(fn)
	}
}

func (r *Registry) notifyOne(fn Subscriber) {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Subscriber panicked during notification", "panic", err)
		}
	}()
	fn(r.snapshot())
}
