package project

import "errors"

// Validation errors surfaced at the form boundary. None of these ever
// reach the registry; a request that fails validation is dropped before
// any state change.
var (
	ErrEmptyTitle          = errors.New("project title cannot be empty")
	ErrTitleTooLong        = errors.New("project title is too long")
	ErrEmptyDescription    = errors.New("project description cannot be empty")
	ErrDescriptionTooShort = errors.New("project description is too short")
	ErrDescriptionTooLong  = errors.New("project description is too long")
	ErrTooFewPeople        = errors.New("people count is below the minimum")
	ErrTooManyPeople       = errors.New("people count is above the maximum")
)
