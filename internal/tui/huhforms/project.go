package huhforms

import "charm.land/huh/v2"

// CreateProjectForm creates a huh form for adding a project card.
// The form uses pointers to update values in place; field-level
// validation happens in the service before the registry is touched,
// so the form itself only collects input.
func CreateProjectForm(
	title *string,
	description *string,
	people *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter project title...").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is this project about? (markdown supported)").
			CharLimit(500).
			Lines(5).
			Value(description),

		huh.NewInput().
			Key("people").
			Title("People").
			Placeholder("How many people are assigned?").
			Value(people),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}
