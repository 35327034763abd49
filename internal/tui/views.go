package tui

import (
	"strings"

	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		"",
		m.renderBody(),
	)

	if sw := m.sidebarWidth(); sw > 0 {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.mainWidth()).Render(main),
			m.theme.Normal.Render(" │ "),
			m.renderSidebar(sw),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		"",
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("⚓ "+optimizer.Title),
		m.theme.Subtitle.Render(optimizer.Tagline),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		style := m.theme.TabInactive
		if t == m.tab {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody() string {
	switch m.tab {
	case TabComparison:
		return m.comparison.View()
	case TabDataset:
		return components.RenderDataset(m.theme, optimizer.DatasetMetrics(m.dataset), m.dataset.Features, m.mainWidth())
	case TabDocumentation:
		return m.docs.View()
	default:
		return m.renderPrediction()
	}
}

func (m Model) renderPrediction() string {
	half := max(m.mainWidth()/2-2, 30)

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(m.form.View()),
		"  ",
		components.RenderPrediction(m.theme, m.prediction, half),
	)

	var status string
	switch {
	case m.running:
		status = m.theme.StatusInfo.Render("Running optimization...")
	case m.lastRun != nil:
		status = components.RenderRunResult(m.theme, *m.lastRun)
	default:
		status = m.theme.Label.Render("Press r to 🚀 Run Optimization")
	}

	return lipgloss.JoinVertical(lipgloss.Left, columns, status)
}

func (m Model) renderSidebar(width int) string {
	about, err := components.RenderMarkdown(optimizer.About, m.theme.GlamourStyle, width)
	if err != nil {
		about = optimizer.About
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("About"),
		strings.TrimSpace(about),
		"",
		m.session.View(),
	))
}

func (m Model) renderFooter() string {
	var lines []string
	// Without the sidebar the session summary moves to the footer.
	if m.sidebarWidth() == 0 && m.session.Runs() > 0 {
		lines = append(lines, m.session.View())
	}
	if m.lastError != nil {
		lines = append(lines, m.theme.StatusError.Render("Error: "+m.lastError.Error()))
	}
	lines = append(lines, m.help.View(m.keymap))
	return strings.Join(lines, "\n")
}
