package picker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangeMsg is emitted once per committed bound. Date is nil when the bound
// has no selected day.
type ChangeMsg struct {
	Name string
	Date *time.Time
}

func changeCmds(msgs []ChangeMsg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Sequence(cmds...)
}
