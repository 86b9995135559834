// Package button is a small focusable push button for Bubble Tea views.
package button

import (
	"github.com/akyairhashvil/wcl/internal/element"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tag is the registered element name.
const Tag = "button-element"

// EventClick is the only event a button emits.
const EventClick = "click"

// Class names understood by the button styles.
const (
	ClassPrimary   = "button-primary"
	ClassSecondary = "button-secondary"
	ClassDisabled  = "button-disabled"
	ClassFocused   = "button-focused"
)

const (
	slotIcon  = ".icon"
	slotLabel = ".label"
)

// ActionMsg is sent when an enabled button is pressed.
type ActionMsg struct {
	ID    string
	Event string
}

var registration = element.Registration{
	Tag:      Tag,
	Template: []string{slotIcon, slotLabel},
	Styles: map[string]lipgloss.Style{
		ClassPrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true),
		ClassSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		ClassDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")),
		ClassFocused:   lipgloss.NewStyle().Underline(true),
	},
}

func init() {
	element.MustRegister(registration)
}

// KeyMap holds the bindings that press a focused button.
type KeyMap struct {
	Press key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	}
}

// Model is a stateless button: everything it renders comes from its fields.
type Model struct {
	ID       string
	Label    string
	Icon     string
	Disabled bool
	Primary  bool
	Focused  bool
	// MaxWidth truncates the label when positive.
	MaxWidth int
	KeyMap   KeyMap
}

func New(id, label string) Model {
	return Model{
		ID:      id,
		Label:   label,
		Primary: true,
		KeyMap:  DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Press returns the action for this button, or false when it is disabled.
func (m Model) Press() (ActionMsg, bool) {
	if m.Disabled {
		return ActionMsg{}, false
	}
	return ActionMsg{ID: m.ID, Event: EventClick}, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused {
		return m, nil
	}
	if key.Matches(keyMsg, m.KeyMap.Press) {
		if action, ok := m.Press(); ok {
			return m, func() tea.Msg { return action }
		}
	}
	return m, nil
}

func (m *Model) Focus() { m.Focused = true }
func (m *Model) Blur() { m.Focused = false }

func (m Model) View() string {
	v, _ := element.MountTag(Tag)
	label := m.Label
	if m.MaxWidth > 0 && ansi.StringWidth(label) > m.MaxWidth {
		label = ansi.Truncate(label, m.MaxWidth, "…")
	}
	element.SetText(v, slotIcon, m.Icon)
	element.SetText(v, slotLabel, label)
	for _, slot := range element.Slots(v) {
		if m.Primary {
			element.AddClasses(v, slot, ClassPrimary)
		} else {
			element.AddClasses(v, slot, ClassSecondary)
		}
		if m.Disabled {
			element.AddClasses(v, slot, ClassDisabled)
		}
		if m.Focused {
			element.AddClasses(v, slot, ClassFocused)
		}
	}
	body := element.RenderAll(v, " ")
	if body == "" {
		body = " "
	}
	frame := lipgloss.NewStyle().Padding(0, 1)
	if m.Primary && !m.Disabled {
		frame = frame.Background(lipgloss.Color("63"))
	}
	return frame.Render("[" + body + "]")
}
