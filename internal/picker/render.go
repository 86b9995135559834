package picker

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/wcl/internal/calendar"
	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/element"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Registered element tags.
const (
	Tag     = "wcl-datetime-picker"
	CellTag = "wcl-month-day"
)

const (
	slotInput  = ".date-input"
	slotHeader = ".month-text"
	slotStart  = ".start-time"
	slotEnd    = ".end-time"
	slotDay    = ".day"
)

var (
	pickerTemplate = []string{slotInput, slotHeader, slotStart, slotEnd}
	cellTemplate   = []string{slotDay}
)

func init() {
	styles := Themes["default"].Classes
	element.MustRegister(element.Registration{Tag: Tag, Template: pickerTemplate, Styles: styles})
	element.MustRegister(element.Registration{Tag: CellTag, Template: cellTemplate, Styles: styles})
}

func (m Model) registration(tag string, template []string) element.Registration {
	return element.Registration{Tag: tag, Template: template, Styles: m.theme.Classes}
}

func (m Model) View() string {
	v := element.Mount(m.registration(Tag, pickerTemplate))
	input := m.renderInput(v)
	if !m.open {
		return input
	}
	panel := m.renderPanel(v)
	if m.cfg.Up {
		return lipgloss.JoinVertical(lipgloss.Left, panel, input)
	}
	return lipgloss.JoinVertical(lipgloss.Left, input, panel)
}

func (m Model) renderInput(v *element.View) string {
	text := m.input.Value()
	if text == "" {
		text = m.theme.Dim.Render(m.cfg.Placeholder)
	}
	element.SetText(v, slotInput, text)
	element.ToggleClass(v, slotInput, ClassRequired, m.cfg.Required && m.input.Value() == "")
	element.ToggleClass(v, slotInput, ClassDisabled, m.cfg.Disabled)
	box := m.theme.Input.Width(m.input.Width)
	if element.HasClass(v, slotInput, ClassRequired) {
		box = box.BorderForeground(lipgloss.Color("196"))
	}
	return box.Render(element.Render(v, slotInput))
}

func (m Model) renderPanel(v *element.View) string {
	element.SetText(v, slotHeader, m.cal.Header())
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Dim.Render("‹ "),
		m.theme.Header.Width(config.CellWidth*config.GridColumns-4).Align(lipgloss.Center).Render(element.Text(v, slotHeader)),
		m.theme.Dim.Render(" ›"),
	)

	rows := []string{header, m.renderWeekdays()}
	rows = append(rows, m.renderGrid()...)
	rows = append(rows, "", m.renderTimes(v), "", m.renderButtons())
	if help := m.keys.HelpFor(m.area()); help != "" {
		rows = append(rows, m.theme.Dim.Render(ansi.Truncate(help, config.SelectAreaWidth-4, "…")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(config.SelectAreaWidth).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderWeekdays() string {
	var b strings.Builder
	for _, name := range m.cal.WeekDays {
		label := ansi.Truncate(name, config.WeekdayLabelWidth, "")
		b.WriteString(m.theme.WeekDay.Width(config.CellWidth).Align(lipgloss.Right).Render(label))
	}
	return b.String()
}

func (m Model) renderGrid() []string {
	grid := m.cal.MonthDaysGrid()
	var rows []string
	var row strings.Builder
	for i, day := range grid {
		row.WriteString(m.renderCell(i, day))
		if (i+1)%config.GridColumns == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return rows
}

// CellClasses lists the classes a grid cell is painted with.
func (m Model) CellClasses(i int, day calendar.Day) []string {
	var classes []string
	if m.inDisplayedMonth(day) {
		classes = append(classes, ClassCurrent)
	} else {
		classes = append(classes, ClassFiller)
	}
	if day.IsEqualTo(m.today) {
		classes = append(classes, ClassToday)
	}
	if !m.Selectable(day) {
		classes = append(classes, ClassUnavailable)
	}
	if m.InRange(day) {
		classes = append(classes, ClassInRange)
	}
	if m.IsSelected(day) {
		classes = append(classes, ClassSelected)
	}
	if m.open && m.focus == FocusGrid && i == m.cursor {
		classes = append(classes, ClassCursor)
	}
	return classes
}

func (m Model) renderCell(i int, day calendar.Day) string {
	v := element.Mount(m.registration(CellTag, cellTemplate))
	element.SetText(v, slotDay, fmt.Sprintf("%2d", day.Date()))
	element.AddClasses(v, slotDay, m.CellClasses(i, day)...)
	cell := element.Render(v, slotDay)
	return lipgloss.NewStyle().Width(config.CellWidth).Align(lipgloss.Right).Render(cell)
}

func (m Model) renderTimes(v *element.View) string {
	element.SetText(v, slotStart, m.timeText(m.cfg.StartTimeTitle, FocusStartHours, m.startHours, m.startMinutes))
	element.ToggleClass(v, slotStart, ClassDisabled, m.timeDisabled)
	if !m.cfg.Range {
		return element.Render(v, slotStart)
	}
	element.SetText(v, slotEnd, m.timeText(m.cfg.EndTimeTitle, FocusEndHours, m.endHours, m.endMinutes))
	element.ToggleClass(v, slotEnd, ClassDisabled, m.timeDisabled)
	return element.Render(v, slotStart) + "  " + element.Render(v, slotEnd)
}

func (m Model) timeText(title string, hoursFocus Focus, hours, minutes int) string {
	h := fmt.Sprintf("%02d", hours)
	mm := fmt.Sprintf("%02d", minutes)
	focused := m.theme.Classes[ClassFocused]
	if m.focus == hoursFocus {
		h = focused.Render(h)
	}
	if m.focus == hoursFocus+1 {
		mm = focused.Render(mm)
	}
	return m.theme.Time.Render(title+" ") + h + ":" + mm
}

func (m Model) renderButtons() string {
	parts := make([]string, 0, len(m.buttons))
	for _, b := range m.buttons {
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
