package models

// Status is the lifecycle stage of a project on the board.
// A project is created Active and can be moved back and forth
// between the two columns; there is no terminal state.
type Status int

const (
	// StatusActive marks a project that is currently being worked on
	StatusActive Status = iota
	// StatusFinished marks a project that has been completed
	StatusFinished
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Project represents a single project card on the board.
//
// ID is assigned once at creation and never changes or gets reused.
// Status is the only field that mutates after creation; everything
// else is fixed for the lifetime of the card. Projects are passed
// around by value so holders of a snapshot cannot reach back into
// registry state.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}
