package picker

import (
	"github.com/akyairhashvil/wcl/internal/button"
	"github.com/akyairhashvil/wcl/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := m.cfg.Width
		if msg.Width > 0 && msg.Width < width {
			width = msg.Width
		}
		m.resize(width)
		return m, nil
	case tea.BlurMsg:
		if m.open {
			m.Close()
		}
		return m, nil
	case button.ActionMsg:
		return m.handleAction(msg)
	case tea.KeyMsg:
		if m.cfg.Disabled {
			return m, nil
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m Model) handleAction(msg button.ActionMsg) (Model, tea.Cmd) {
	if msg.Event != button.EventClick || m.cfg.Disabled {
		return m, nil
	}
	switch msg.ID {
	case config.ResetButtonID:
		m.Reset()
	case config.TodayButtonID:
		m.Today()
	case config.DoneButtonID:
		return m, changeCmds(m.Done())
	}
	return m, nil
}
