// Package tui hosts the picker in a full Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/picker"
	"github.com/akyairhashvil/wcl/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It opens the picker on start and hands every
// committed bound to the recorder.
type AppModel struct {
	ctx      context.Context
	picker   picker.Model
	recorder Recorder

	// QuitOnDone ends the program once every bound has been committed.
	QuitOnDone bool

	committed []picker.ChangeMsg
	status    string
	err       error
	width     int
	height    int
}

// NewAppModel wraps p. A nil recorder disables history.
func NewAppModel(ctx context.Context, p picker.Model, rec Recorder) AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if !p.IsOpen() {
		p.Toggle()
	}
	return AppModel{ctx: ctx, picker: p, recorder: rec}
}

func (m AppModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m AppModel) Picker() picker.Model { return m.picker }
func (m AppModel) Committed() []picker.ChangeMsg { return m.committed }
func (m AppModel) Err() error { return m.err }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.picker.IsOpen() {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case picker.ChangeMsg:
		return m.handleChange(msg)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m AppModel) handleChange(msg picker.ChangeMsg) (tea.Model, tea.Cmd) {
	m.committed = append(m.committed, msg)
	m.status = describe(msg)
	m.err = nil
	if m.recorder != nil {
		if err := m.recorder.RecordPick(m.ctx, msg.Name, msg.Date); err != nil {
			util.LogError("record pick", err)
			m.err = err
		}
	}
	if m.QuitOnDone && m.complete(msg) {
		return m, tea.Quit
	}
	return m, nil
}

// complete reports whether msg is the last notification of a commit.
func (m AppModel) complete(msg picker.ChangeMsg) bool {
	if m.picker.Config().Range {
		return msg.Name == config.EndDateName
	}
	return msg.Name == config.StartDateName
}

func describe(msg picker.ChangeMsg) string {
	if msg.Date == nil {
		return msg.Name + ": none"
	}
	return fmt.Sprintf("%s: %s", msg.Name, msg.Date.Format("2006-01-02 15:04 -07:00"))
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s v%s", config.AppName, VersionLabel())))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	hint := "ctrl+c quit"
	if !m.picker.IsOpen() {
		hint = "q quit | enter open | ctrl+c quit"
	}
	b.WriteString(statusStyle.Render(hint))
	return b.String()
}
