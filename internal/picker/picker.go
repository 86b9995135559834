// Package picker is a date and date-range picker for Bubble Tea programs.
//
// A Model is built from a Config and owns its own Calendar and selection
// state. Committing a selection with Done emits one ChangeMsg per bound.
package picker

import (
	"time"

	"github.com/akyairhashvil/wcl/internal/button"
	"github.com/akyairhashvil/wcl/internal/calendar"
	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/araddon/dateparse"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// now is replaced in tests.
var now = time.Now

// State is the interaction state derived from the selection.
type State int

const (
	StateClosed State = iota
	StateOpen
	StatePartial
	StateFull
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	default:
		return "closed"
	}
}

// Focus identifies the control that receives keys while the panel is open.
type Focus int

const (
	FocusGrid Focus = iota
	FocusStartHours
	FocusStartMinutes
	FocusEndHours
	FocusEndMinutes
	FocusReset
	FocusToday
	FocusDone
)

type Model struct {
	cfg   Config
	cal   *calendar.Calendar
	today calendar.Day

	startDay *calendar.Day
	endDay   *calendar.Day

	startHours   int
	startMinutes int
	endHours     int
	endMinutes   int

	// zone is the location committed dates are composed in. It is captured
	// from an explicit start date when one is configured.
	zone         *time.Location
	timeDisabled bool

	open   bool
	focus  Focus
	cursor int

	input   textinput.Model
	buttons []button.Model
	theme   Theme
	keys    *HandlerRegistry
	width   int
}

// New builds a closed picker from cfg.
func New(cfg Config) Model {
	m := Model{keys: DefaultRegistry()}
	m.ApplyConfig(cfg)
	return m
}

// ApplyConfig recomputes every derived field from cfg. The calendar and the
// selection are rebuilt, never patched.
func (m *Model) ApplyConfig(cfg Config) {
	cfg = cfg.normalized()
	m.cfg = cfg
	m.theme = ResolveTheme(cfg.Theme)
	m.zone = cfg.Location
	if m.keys == nil {
		m.keys = DefaultRegistry()
	}

	current := now().In(m.zone)
	m.today = calendar.NewDay(current, cfg.Locale)
	m.startDay, m.endDay = nil, nil
	m.startHours, m.startMinutes = current.Hour(), current.Minute()
	m.endHours, m.endMinutes = config.DefaultEndHours, config.DefaultEndMinutes

	if cfg.StartDate != "" {
		if t, err := dateparse.ParseIn(cfg.StartDate, cfg.Location); err == nil {
			m.zone = t.Location()
			d := calendar.NewDay(t, cfg.Locale)
			m.setBounds(d, d)
			m.startHours, m.startMinutes = t.Hour(), t.Minute()
		}
	}
	if m.startDay == nil && !cfg.Range {
		m.setBounds(m.today, m.today)
	}

	anchor := m.today
	if m.startDay != nil {
		anchor = *m.startDay
	}
	m.cal = calendar.New(anchor.Year(), anchor.MonthNumber(), cfg.Locale)
	m.timeDisabled = m.startDay == nil
	m.cursorTo(anchor)

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.Placeholder = cfg.Placeholder
	m.resize(cfg.Width)
	m.input.SetValue("")
	if cfg.StartDate != "" && m.startDay != nil {
		m.input.SetValue(m.DisplayValue())
	}

	m.buttons = []button.Model{
		button.New(config.ResetButtonID, cfg.BtnReset),
		button.New(config.TodayButtonID, cfg.BtnToday),
		button.New(config.DoneButtonID, cfg.BtnDone),
	}
	m.buttons[0].Primary = false
	m.buttons[1].Primary = false
	for i := range m.buttons {
		m.buttons[i].Disabled = cfg.Disabled
	}
	m.open = false
	m.focus = FocusGrid
	m.syncFocus()
}

func (m *Model) setBounds(start, end calendar.Day) {
	m.startDay = &start
	m.endDay = &end
}

// resize re-measures the bound input for a new available width.
func (m *Model) resize(width int) {
	m.width = width
	w := width - config.InputWidthPadding
	if w < config.MinInputWidth {
		w = config.MinInputWidth
	}
	m.input.Width = w
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Config() Config { return m.cfg }
func (m Model) Calendar() *calendar.Calendar { return m.cal }
func (m Model) IsOpen() bool { return m.open }
func (m Model) Focused() Focus { return m.focus }
func (m Model) Cursor() int { return m.cursor }
func (m Model) Value() string { return m.input.Value() }
func (m Model) TimeDisabled() bool { return m.timeDisabled }
func (m Model) Zone() *time.Location { return m.zone }
func (m Model) Keys() *HandlerRegistry { return m.keys }
func (m Model) Buttons() []button.Model { return m.buttons }
func (m Model) InputWidth() int { return m.input.Width }

// StartDay returns the selected start day, if any.
func (m Model) StartDay() (calendar.Day, bool) {
	if m.startDay == nil {
		return calendar.Day{}, false
	}
	return *m.startDay, true
}

func (m Model) EndDay() (calendar.Day, bool) {
	if m.endDay == nil {
		return calendar.Day{}, false
	}
	return *m.endDay, true
}

// Time returns the hours and minutes of a time field.
func (m Model) Time(f TimeField) int {
	switch f {
	case StartHours:
		return m.startHours
	case StartMinutes:
		return m.startMinutes
	case EndHours:
		return m.endHours
	case EndMinutes:
		return m.endMinutes
	}
	return 0
}

// State derives the interaction state. In range mode a span whose bounds
// are the same day counts as one chosen bound.
func (m Model) State() State {
	switch {
	case !m.open:
		return StateClosed
	case m.startDay == nil:
		return StateOpen
	case m.cfg.Range && m.endDay != nil && m.startDay.IsEqualTo(*m.endDay):
		return StatePartial
	default:
		return StateFull
	}
}
