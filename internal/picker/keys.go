package picker

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Area is the part of the picker a key binding applies to.
type Area int

const (
	AreaInput Area = iota
	AreaGrid
	AreaTime
	AreaButtons
)

// area reports where keys currently go.
func (m Model) area() Area {
	if !m.open {
		return AreaInput
	}
	switch m.focus {
	case FocusGrid:
		return AreaGrid
	case FocusReset, FocusToday, FocusDone:
		return AreaButtons
	default:
		return AreaTime
	}
}

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// Areas limits the binding; empty means everywhere.
	Areas    []Area
	Priority int
}

func (b KeyBinding) AppliesTo(a Area) bool {
	if len(b.Areas) == 0 {
		return true
	}
	for _, v := range b.Areas {
		if v == a {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the first binding for key in the model's area that reports
// the key as handled.
func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	a := m.area()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(a) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsFor(a Area) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(a) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(a Area) string {
	bindings := r.GetBindingsFor(a)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

// DefaultRegistry wires the built-in keyboard map.
func DefaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	open := []Area{AreaGrid, AreaTime, AreaButtons}

	r.Register(KeyBinding{Key: "ctrl+o", Handler: handleToggle, Description: "toggle", Priority: 100})
	r.Register(KeyBinding{Key: "enter", Handler: handleToggle, Description: "open", Areas: []Area{AreaInput}})
	r.Register(KeyBinding{Key: " ", Handler: handleToggle, Areas: []Area{AreaInput}})
	r.Register(KeyBinding{Key: "esc", Handler: handleClose, Description: "close", Areas: open, Priority: 90})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocus(1), Description: "next", Areas: open, Priority: 80})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleFocus(-1), Description: "prev", Areas: open, Priority: 80})

	grid := []Area{AreaGrid}
	moves := []struct {
		keys  []string
		delta int
		desc  string
	}{
		{[]string{"left", "h"}, -1, "day"},
		{[]string{"right", "l"}, 1, ""},
		{[]string{"up", "k"}, -7, "week"},
		{[]string{"down", "j"}, 7, ""},
	}
	for _, mv := range moves {
		for i, k := range mv.keys {
			desc := mv.desc
			if i > 0 {
				desc = ""
			}
			r.Register(KeyBinding{Key: k, Handler: handleMove(mv.delta), Description: desc, Areas: grid})
		}
	}
	r.Register(KeyBinding{Key: "pgup", Handler: handlePrevMonth, Description: "prev month", Areas: grid})
	r.Register(KeyBinding{Key: "[", Handler: handlePrevMonth, Areas: grid})
	r.Register(KeyBinding{Key: "pgdown", Handler: handleNextMonth, Description: "next month", Areas: grid})
	r.Register(KeyBinding{Key: "]", Handler: handleNextMonth, Areas: grid})
	r.Register(KeyBinding{Key: "enter", Handler: handleClick, Description: "select", Areas: grid})
	r.Register(KeyBinding{Key: " ", Handler: handleClick, Areas: grid})

	timeArea := []Area{AreaTime}
	r.Register(KeyBinding{Key: "up", Handler: handleTime, Description: "+1", Areas: timeArea})
	r.Register(KeyBinding{Key: "down", Handler: handleTime, Description: "-1", Areas: timeArea})
	r.Register(KeyBinding{Key: "pgup", Handler: handleTime, Description: "max", Areas: timeArea})
	r.Register(KeyBinding{Key: "pgdown", Handler: handleTime, Description: "min", Areas: timeArea})
	r.Register(KeyBinding{Key: "backspace", Handler: handleTime, Description: "clear", Areas: timeArea})
	for d := '0'; d <= '9'; d++ {
		desc := ""
		if d == '0' {
			desc = "type"
		}
		r.Register(KeyBinding{Key: string(d), Handler: handleTime, Description: desc, Areas: timeArea})
	}

	buttons := []Area{AreaButtons}
	r.Register(KeyBinding{Key: "enter", Handler: handlePress, Description: "press", Areas: buttons})
	r.Register(KeyBinding{Key: " ", Handler: handlePress, Areas: buttons})
	return r
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cfg.Disabled {
		return m, nil, false
	}
	m.Toggle()
	return m, nil, true
}

func handleClose(m Model, _ string) (Model, tea.Cmd, bool) {
	m.Close()
	return m, nil, true
}

func handleFocus(dir int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.CycleFocus(dir)
		return m, nil, true
	}
}

func handleMove(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.MoveCursor(delta)
		return m, nil, true
	}
}

func handlePrevMonth(m Model, _ string) (Model, tea.Cmd, bool) {
	m.PrevMonth()
	return m, nil, true
}

func handleNextMonth(m Model, _ string) (Model, tea.Cmd, bool) {
	m.NextMonth()
	return m, nil, true
}

func handleClick(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ClickCell(m.cursor)
	return m, nil, true
}

func handleTime(m Model, key string) (Model, tea.Cmd, bool) {
	field, ok := fieldFor(m.focus)
	if !ok {
		return m, nil, false
	}
	handled := m.HandleTimeKey(field, key)
	return m, nil, handled
}

func handlePress(m Model, _ string) (Model, tea.Cmd, bool) {
	idx := int(m.focus - FocusReset)
	if idx < 0 || idx >= len(m.buttons) {
		return m, nil, false
	}
	action, ok := m.buttons[idx].Press()
	if !ok {
		return m, nil, true
	}
	return m, func() tea.Msg { return action }, true
}
