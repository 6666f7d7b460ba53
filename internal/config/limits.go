package config

// Limits defines the validation bounds applied to project form input.
// The registry itself never validates; these bounds are enforced at the
// service boundary before a project reaches it.
type Limits struct {
	MaxTitleLength       int `yaml:"max_title_length"`
	MinDescriptionLength int `yaml:"min_description_length"`
	MaxDescriptionLength int `yaml:"max_description_length"`
	MinPeople            int `yaml:"min_people"`
	MaxPeople            int `yaml:"max_people"`
}

// DefaultLimits returns the default validation bounds
func DefaultLimits() Limits {
	return Limits{
		MaxTitleLength:       100,
		MinDescriptionLength: 5,
		MaxDescriptionLength: 500,
		MinPeople:            1,
		MaxPeople:            5,
	}
}

// applyDefaults fills in missing or nonsensical limits with defaults
func (l *Limits) applyDefaults() {
	defaults := DefaultLimits()

	if l.MaxTitleLength <= 0 {
		l.MaxTitleLength = defaults.MaxTitleLength
	}
	if l.MinDescriptionLength <= 0 {
		l.MinDescriptionLength = defaults.MinDescriptionLength
	}
	if l.MaxDescriptionLength <= 0 {
		l.MaxDescriptionLength = defaults.MaxDescriptionLength
	}
	if l.MinPeople <= 0 {
		l.MinPeople = defaults.MinPeople
	}
	if l.MaxPeople <= 0 || l.MaxPeople < l.MinPeople {
		l.MaxPeople = defaults.MaxPeople
	}
}
