package config

// Layout constants.
const (
	// CellWidth is the rendered width of one grid cell.
	CellWidth = 4

	// GridColumns is the number of weekday columns.
	GridColumns = 7

	// WeekdayLabelWidth truncates weekday captions.
	WeekdayLabelWidth = 3

	// DefaultInputWidth is used when no width is configured.
	DefaultInputWidth = 28

	// InputWidthPadding is subtracted from the configured width for the text field.
	InputWidthPadding = 2

	// MinInputWidth is the smallest text field width after a resize.
	MinInputWidth = 10

	// SelectAreaWidth is the width of the opened calendar panel.
	SelectAreaWidth = CellWidth*GridColumns + 4
)
