package picker

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/wcl/internal/calendar"
	"github.com/akyairhashvil/wcl/internal/config"
)

// Toggle opens a closed picker and closes an open one. Disabled pickers
// never open.
func (m *Model) Toggle() {
	if m.open {
		m.Close()
		return
	}
	if m.cfg.Disabled {
		return
	}
	m.open = true
	m.focus = FocusGrid
	anchor := m.today
	if m.startDay != nil {
		anchor = *m.startDay
	}
	m.cal.ToDate(anchor.MonthNumber(), anchor.Year())
	m.cursorTo(anchor)
	m.syncFocus()
}

// Close hides the panel without committing.
func (m *Model) Close() {
	m.open = false
	m.focus = FocusGrid
	m.syncFocus()
}

func (m *Model) PrevMonth() {
	date := m.cursorDate()
	m.cal.ToPreviousMonth()
	m.clampCursor(date)
}

func (m *Model) NextMonth() {
	date := m.cursorDate()
	m.cal.ToNextMonth()
	m.clampCursor(date)
}

// Grid returns the cells of the displayed month.
func (m Model) Grid() []calendar.Day {
	return m.cal.MonthDaysGrid()
}

// ClickCell activates grid cell i. A filler cell navigates to its month
// instead of selecting.
func (m *Model) ClickCell(i int) {
	if m.cfg.Disabled {
		return
	}
	grid := m.cal.MonthDaysGrid()
	if i < 0 || i >= len(grid) {
		return
	}
	day := grid[i]
	if !m.inDisplayedMonth(day) {
		m.cal.ToDate(day.MonthNumber(), day.Year())
		m.cursorTo(day)
		return
	}
	m.cursor = i
	m.SelectDay(day)
}

// SelectDay applies a click on day and reports whether the selection changed.
func (m *Model) SelectDay(day calendar.Day) bool {
	if m.cfg.Disabled || !m.Selectable(day) {
		return false
	}
	if m.startDay != nil && day.IsEqualTo(*m.startDay) {
		return false
	}
	m.timeDisabled = false
	switch {
	case m.startDay == nil:
		m.setBounds(day, day)
	case !m.cfg.Range:
		m.setBounds(day, day)
	case day.IsLessTo(*m.startDay):
		start := day
		m.startDay = &start
	default:
		end := day
		m.endDay = &end
	}
	if !m.cfg.Range {
		m.input.SetValue(m.DisplayValue())
	}
	return true
}

// Selectable reports whether day may be chosen.
func (m Model) Selectable(day calendar.Day) bool {
	if m.cfg.Range || !m.cfg.DisablePast {
		return true
	}
	return !day.IsLessTo(m.today) || day.IsEqualTo(m.today)
}

// InRange reports whether day lies strictly between the selected bounds.
func (m Model) InRange(day calendar.Day) bool {
	if m.startDay == nil || m.endDay == nil {
		return false
	}
	if day.IsEqualTo(*m.startDay) || day.IsEqualTo(*m.endDay) {
		return false
	}
	return m.startDay.IsLessTo(day) && day.IsLessTo(*m.endDay)
}

// IsSelected reports whether day is one of the selected bounds.
func (m Model) IsSelected(day calendar.Day) bool {
	if m.startDay != nil && day.IsEqualTo(*m.startDay) {
		return true
	}
	return m.cfg.Range && m.endDay != nil && day.IsEqualTo(*m.endDay)
}

// Today re-anchors the calendar and the selection on the current date. The
// panel stays open.
func (m *Model) Today() {
	if m.cfg.Disabled {
		return
	}
	current := now().In(m.zone)
	m.today = calendar.NewDay(current, m.cfg.Locale)
	m.setBounds(m.today, m.today)
	m.startHours, m.startMinutes = current.Hour(), current.Minute()
	m.cal = calendar.New(m.today.Year(), m.today.MonthNumber(), m.cfg.Locale)
	m.cursorTo(m.today)
	m.timeDisabled = false
	if !m.cfg.Range {
		m.input.SetValue(m.DisplayValue())
	}
}

// Reset clears the selection and restores the default time bounds.
func (m *Model) Reset() {
	if m.cfg.Disabled {
		return
	}
	current := now().In(m.zone)
	m.startDay, m.endDay = nil, nil
	m.timeDisabled = true
	m.startHours, m.startMinutes = current.Hour(), current.Minute()
	m.endHours, m.endMinutes = config.DefaultEndHours, config.DefaultEndMinutes
	if m.focus >= FocusStartHours && m.focus <= FocusEndMinutes {
		m.focus = FocusGrid
		m.syncFocus()
	}
}

// Done commits the selection: it writes the display value into the input,
// closes the panel and returns one ChangeMsg per bound.
func (m *Model) Done() []ChangeMsg {
	if m.cfg.Disabled {
		return nil
	}
	start := m.compose(m.startDay, m.startHours, m.startMinutes)
	msgs := []ChangeMsg{{Name: config.StartDateName, Date: start}}
	if m.cfg.Range {
		end := m.compose(m.endDay, m.endHours, m.endMinutes)
		msgs = append(msgs, ChangeMsg{Name: config.EndDateName, Date: end})
	}
	m.input.SetValue(m.DisplayValue())
	m.Close()
	return msgs
}

func (m Model) compose(d *calendar.Day, hours, minutes int) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Date(d.Year(), time.Month(d.MonthNumber()), d.Date(), hours, minutes, 0, 0, m.zone)
	return &t
}

// DisplayValue is the text the bound input shows for the current selection.
func (m Model) DisplayValue() string {
	if m.startDay == nil {
		return ""
	}
	if m.cfg.Range {
		if m.endDay == nil {
			return ""
		}
		return m.startDay.Format(m.cfg.Format) + " - " + m.endDay.Format(m.cfg.Format)
	}
	return fmt.Sprintf("%s %02d:%02d", m.startDay.Format(m.cfg.Format), m.startHours, m.startMinutes)
}

func (m Model) inDisplayedMonth(d calendar.Day) bool {
	month := m.cal.Month()
	return d.MonthNumber() == month.Number() && d.Year() == month.Year()
}

func (m Model) cursorDate() calendar.Day {
	grid := m.cal.MonthDaysGrid()
	if m.cursor >= 0 && m.cursor < len(grid) {
		return grid[m.cursor]
	}
	return m.cal.Month().GetDay(1)
}

// cursorTo places the cursor on d, which must be in the displayed month.
func (m *Model) cursorTo(d calendar.Day) {
	m.cursor = m.cal.LeadingFillers() + d.Date() - 1
}

// clampCursor keeps the day of month of prev after a month change.
func (m *Model) clampCursor(prev calendar.Day) {
	date := prev.Date()
	if n := m.cal.Month().NumberOfDays(); date > n {
		date = n
	}
	m.cursor = m.cal.LeadingFillers() + date - 1
}

// MoveCursor shifts the grid cursor by delta days, following it into the
// neighbouring month when it leaves the grid.
func (m *Model) MoveCursor(delta int) {
	grid := m.cal.MonthDaysGrid()
	target := m.cursor + delta
	if target >= 0 && target < len(grid) {
		m.cursor = target
		return
	}
	t := m.cursorDate().Time().AddDate(0, 0, delta)
	m.cal.ToDate(int(t.Month()), t.Year())
	m.cursor = m.cal.LeadingFillers() + t.Day() - 1
}

func (m Model) focusOrder() []Focus {
	order := []Focus{FocusGrid}
	if !m.timeDisabled {
		order = append(order, FocusStartHours, FocusStartMinutes)
		if m.cfg.Range {
			order = append(order, FocusEndHours, FocusEndMinutes)
		}
	}
	return append(order, FocusReset, FocusToday, FocusDone)
}

// CycleFocus moves focus forward (dir > 0) or backward through the panel.
func (m *Model) CycleFocus(dir int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	m.focus = order[idx]
	m.syncFocus()
}

func (m *Model) syncFocus() {
	for i := range m.buttons {
		m.buttons[i].Blur()
	}
	if !m.open {
		return
	}
	switch m.focus {
	case FocusReset:
		m.buttons[0].Focus()
	case FocusToday:
		m.buttons[1].Focus()
	case FocusDone:
		m.buttons[2].Focus()
	}
}
