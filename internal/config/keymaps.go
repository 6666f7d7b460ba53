package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddProject    string `yaml:"add_project"`
	ViewProject   string `yaml:"view_project"`
	GrabCard      string `yaml:"grab_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddProject:    "a",
		ViewProject:   "enter",
		GrabCard:      "g",
		MoveCardLeft:  "H",
		MoveCardRight: "L",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddProject == "" {
		k.AddProject = defaults.AddProject
	}
	if k.ViewProject == "" {
		k.ViewProject = defaults.ViewProject
	}
	if k.GrabCard == "" {
		k.GrabCard = defaults.GrabCard
	}
	if k.MoveCardLeft == "" {
		k.MoveCardLeft = defaults.MoveCardLeft
	}
	if k.MoveCardRight == "" {
		k.MoveCardRight = defaults.MoveCardRight
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
