package components

const (
	CardHeight         = 5  // CardHeight is the fixed height of a project card
	ColumnWidth        = 40 // Outer width of a board column
	CardWidth          = 36 // Inner width of a project card
	cardTitleMaxLength = 30 // Maximum display length for a card title before truncation
	columnOverhead     = 5  // borders, padding, header and indicator lines inside a column
)
