package components

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunCompleteMsg is sent when an optimization run finishes.
type RunCompleteMsg struct {
	Err    error
	Result model.RunResult
	// Seq identifies the run that produced the message.
	Seq int
}

// SessionPanelModel summarizes the runs made during this session.
type SessionPanelModel struct {
	theme         themes.Theme
	startTime     time.Time
	lastRunTime   time.Time
	now           func() time.Time
	strategyStats map[model.Strategy]int
	runs          int
	failed        int
	scoreTotal    int
	width         int
	compact       bool
}

// NewSessionPanelModel creates a new session panel.
func NewSessionPanelModel(theme themes.Theme) SessionPanelModel {
	return SessionPanelModel{
		theme:         theme,
		strategyStats: make(map[model.Strategy]int),
		now:           time.Now,
		startTime:     time.Now(),
		width:         30,
	}
}

// Update handles messages.
func (m SessionPanelModel) Update(msg tea.Msg) (SessionPanelModel, tea.Cmd) {
	if msg, ok := msg.(RunCompleteMsg); ok {
		m.record(msg)
	}
	return m, nil
}

func (m *SessionPanelModel) record(msg RunCompleteMsg) {
	m.lastRunTime = m.now()
	if msg.Err != nil {
		m.failed++
		return
	}
	m.runs++
	m.scoreTotal += msg.Result.Prediction.Score
	m.strategyStats[msg.Result.Prediction.Strategy]++
}

// Runs returns the number of successful runs.
func (m SessionPanelModel) Runs() int {
	return m.runs
}

// AverageScore returns the mean optimization score across runs.
func (m SessionPanelModel) AverageScore() int {
	if m.runs == 0 {
		return 0
	}
	return m.scoreTotal / m.runs
}

// SetCompact sets compact mode.
func (m *SessionPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *SessionPanelModel) Resize(width int) {
	m.width = width
}

// View renders the panel.
func (m SessionPanelModel) View() string {
	if m.compact {
		return m.theme.Label.Render(fmt.Sprintf(
			"Runs: %d | Avg score: %d | Session: %s",
			m.runs, m.AverageScore(), formatDuration(m.now().Sub(m.startTime)),
		))
	}

	lines := []string{
		fmt.Sprintf("Runs:       %d", m.runs),
		fmt.Sprintf("Avg score:  %d", m.AverageScore()),
		fmt.Sprintf("Session:    %s", formatDuration(m.now().Sub(m.startTime))),
	}
	if m.failed > 0 {
		lines = append(lines, m.theme.StatusError.Render(fmt.Sprintf("Failed:     %d", m.failed)))
	}
	if !m.lastRunTime.IsZero() {
		lines = append(lines, fmt.Sprintf("Last run:   %s ago", formatDuration(m.now().Sub(m.lastRunTime))))
	}

	sections := []string{
		m.theme.Bold.Render("Session"),
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	}
	if len(m.strategyStats) > 0 {
		sections = append(sections, "", m.renderStrategyDistribution())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SessionPanelModel) renderStrategyDistribution() string {
	type stat struct {
		strategy model.Strategy
		count    int
	}

	stats := make([]stat, 0, len(m.strategyStats))
	for s, c := range m.strategyStats {
		stats = append(stats, stat{s, c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].strategy < stats[j].strategy
	})

	bars := make([]BarSeries, len(stats))
	for i, s := range stats {
		bars[i] = BarSeries{Label: string(s.strategy), Value: s.count}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("Strategies"),
		RenderBarChart(m.theme, bars, stats[0].count, m.width),
	)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
