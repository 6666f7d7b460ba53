package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background: "#000000",

		Create: "#FFFFFF",

		ColumnBorder:   "#808080",
		CardBorder:     "#585858",
		CardBackground: "#121212",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",
		DropTarget:     "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#D0D0D0",
		WarningBg: "#303030",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
