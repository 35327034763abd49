package tui

import (
	"time"

	"github.com/Veraticus/portops/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long an error stays on the status line.
var statusTimeout = 5 * time.Second

// runOptimization runs the optimizer off the update loop.
func (m Model) runOptimization() tea.Cmd {
	ctx, runner, in, seq := m.ctx, m.runner, m.input, m.runSeq
	return func() tea.Msg {
		result, err := runner.Run(ctx, in)
		return components.RunCompleteMsg{Result: result, Err: err, Seq: seq}
	}
}

// clearStatusAfter hides error seq after a delay.
func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
