package state

import "charm.land/huh/v2"

// FormState manages the project creation form.
// The huh form writes directly into the Form* fields through pointers
// captured at construction time.
type FormState struct {
	ProjectForm *huh.Form

	FormTitle       string
	FormDescription string
	FormPeople      string
	FormConfirm     bool
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// ClearProjectForm resets the form and its backing fields.
func (s *FormState) ClearProjectForm() {
	s.ProjectForm = nil
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormPeople = ""
	s.FormConfirm = false
}
