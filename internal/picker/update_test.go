package picker

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/wcl/internal/button"
	"github.com/akyairhashvil/wcl/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestUpdateOpensAndCloses(t *testing.T) {
	m := newTestPicker(t, nil)
	m.Close()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsOpen() {
		t.Fatalf("enter should open the picker")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() {
		t.Fatalf("esc should close the picker")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.IsOpen() {
		t.Fatalf("ctrl+o should open the picker")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.IsOpen() {
		t.Fatalf("ctrl+o should close the picker")
	}
}

func TestUpdateBlurCloses(t *testing.T) {
	m := newTestPicker(t, nil)
	m, _ = send(t, m, tea.BlurMsg{})
	if m.IsOpen() {
		t.Fatalf("blur should close the picker")
	}
}

func TestUpdateFocusCycle(t *testing.T) {
	m := newTestPicker(t, nil)
	want := []Focus{FocusStartHours, FocusStartMinutes, FocusReset, FocusToday, FocusDone, FocusGrid}
	for i, f := range want {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.Focused() != f {
			t.Fatalf("tab %d: focus = %d, want %d", i+1, m.Focused(), f)
		}
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != FocusDone {
		t.Fatalf("shift+tab from grid should wrap to done, got %d", m.Focused())
	}
	if !m.Buttons()[2].Focused {
		t.Fatalf("done button should render focused")
	}
}

func TestUpdateRangeFocusSkipsDisabledTime(t *testing.T) {
	m := rangePicker(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != FocusReset {
		t.Fatalf("disabled time fields should be skipped, got %d", m.Focused())
	}
	m.SelectDay(june(3))
	m.focus = FocusGrid
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.Focused() != FocusEndMinutes {
		t.Fatalf("expected end minutes after four tabs, got %d", m.Focused())
	}
}

func TestUpdateGridKeys(t *testing.T) {
	m := newTestPicker(t, nil)
	start := m.Cursor()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != start+8 {
		t.Fatalf("cursor = %d, want %d", m.Cursor(), start+8)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	day, _ := m.StartDay()
	if !day.IsEqualTo(june(23)) {
		t.Fatalf("space should select the cursor day, got %s", day)
	}
	m, _ = send(t, m, runeKey("]"))
	if m.Calendar().Month().Number() != 7 {
		t.Fatalf("] should move to July, got %s", m.Calendar().Header())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp}, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Calendar().Month().Number() != 5 {
		t.Fatalf("pgup twice should move to May, got %s", m.Calendar().Header())
	}
}

func TestUpdateTimeKeys(t *testing.T) {
	m := newTestPicker(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runeKey("0"), runeKey("7"))
	if m.Time(StartHours) != 7 {
		t.Fatalf("typed hours = %d, want 7", m.Time(StartHours))
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Time(StartMinutes) != 59 {
		t.Fatalf("pgup minutes = %d, want 59", m.Time(StartMinutes))
	}
}

func TestUpdateButtonPress(t *testing.T) {
	m := newTestPicker(t, nil)
	m.focus = FocusDone
	m.syncFocus()
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("pressing done should produce a command")
	}
	action, ok := cmd().(button.ActionMsg)
	if !ok || action.ID != config.DoneButtonID || action.Event != button.EventClick {
		t.Fatalf("unexpected action %#v", action)
	}
	m, cmd = send(t, m, action)
	if cmd == nil {
		t.Fatalf("done action should emit change messages")
	}
	if m.IsOpen() {
		t.Fatalf("done should close the picker")
	}
	if !strings.HasPrefix(m.Value(), "15/06/2022") {
		t.Fatalf("value = %q", m.Value())
	}
}

func TestUpdateResetAndTodayActions(t *testing.T) {
	m := rangePicker(t)
	m.SelectDay(june(10))
	m, _ = send(t, m, button.ActionMsg{ID: config.ResetButtonID, Event: button.EventClick})
	if _, ok := m.StartDay(); ok {
		t.Fatalf("reset action should clear the selection")
	}
	m, _ = send(t, m, button.ActionMsg{ID: config.TodayButtonID, Event: button.EventClick})
	if day, ok := m.StartDay(); !ok || !day.IsEqualTo(june(15)) {
		t.Fatalf("today action should select today")
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := newTestPicker(t, nil)
	tests := []struct {
		width int
		want  int
	}{
		{100, config.DefaultInputWidth - config.InputWidthPadding},
		{20, 18},
		{5, config.MinInputWidth},
	}
	for _, tt := range tests {
		m, _ = send(t, m, tea.WindowSizeMsg{Width: tt.width, Height: 40})
		if m.InputWidth() != tt.want {
			t.Errorf("width %d: input width = %d, want %d", tt.width, m.InputWidth(), tt.want)
		}
	}
}

func TestRegistryHelpAndPriority(t *testing.T) {
	r := DefaultRegistry()
	help := r.HelpFor(AreaGrid)
	for _, want := range []string{"[ctrl+o]toggle", "[esc]close", "[pgup]prev month", "[enter]select"} {
		if !strings.Contains(help, want) {
			t.Fatalf("grid help %q missing %q", help, want)
		}
	}
	if strings.Contains(r.HelpFor(AreaInput), "select") {
		t.Fatalf("input help should not list grid bindings")
	}

	called := false
	r.Register(KeyBinding{Key: "esc", Priority: 200, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		called = true
		return m, nil, true
	}})
	m := newTestPicker(t, nil)
	m, _, handled := r.Handle(m, "esc")
	if !handled || !called {
		t.Fatalf("higher priority binding should win")
	}
	if !m.IsOpen() {
		t.Fatalf("default esc handler should not have run")
	}
}
