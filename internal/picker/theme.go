package picker

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Day cell classes.
const (
	ClassCurrent     = "current"
	ClassFiller      = "filler"
	ClassToday       = "today"
	ClassSelected    = "selected"
	ClassInRange     = "in-range"
	ClassCursor      = "cursor"
	ClassUnavailable = "unavailable"
)

// Panel classes.
const (
	ClassVisible  = "visible"
	ClassUp       = "select-area-up"
	ClassRequired = "required"
	ClassDisabled = "disabled"
	ClassFocused  = "focused"
)

type Theme struct {
	Name    string
	Border  lipgloss.Color
	Header  lipgloss.Style
	WeekDay lipgloss.Style
	Input   lipgloss.Style
	Time    lipgloss.Style
	Dim     lipgloss.Style
	// Classes styles day cells and panel slots by class name.
	Classes map[string]lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Border:  lipgloss.Color("63"),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		WeekDay: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Classes: map[string]lipgloss.Style{
			ClassFiller:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			ClassCurrent:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			ClassToday:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
			ClassUnavailable: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
			ClassInRange:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
			ClassSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("205")).Bold(true),
			ClassCursor:      lipgloss.NewStyle().Underline(true).Reverse(true),
			ClassRequired:    lipgloss.NewStyle().BorderForeground(lipgloss.Color("196")),
			ClassDisabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			ClassFocused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		},
	},
	"dracula": {
		Name:    "Dracula",
		Border:  lipgloss.Color("62"),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		WeekDay: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Classes: map[string]lipgloss.Style{
			ClassFiller:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
			ClassCurrent:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			ClassToday:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
			ClassUnavailable: lipgloss.NewStyle().Foreground(lipgloss.Color("59")).Strikethrough(true),
			ClassInRange:     lipgloss.NewStyle().Background(lipgloss.Color("236")),
			ClassSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("212")).Bold(true),
			ClassCursor:      lipgloss.NewStyle().Underline(true).Reverse(true),
			ClassRequired:    lipgloss.NewStyle().BorderForeground(lipgloss.Color("210")),
			ClassDisabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
			ClassFocused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	},
}

// ResolveTheme falls back to the default theme for unknown names.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
