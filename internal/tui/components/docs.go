package components

import (
	"log/slog"

	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// DocsModel shows markdown documentation in a scrollable viewport.
type DocsModel struct {
	theme    themes.Theme
	markdown string
	footer   string
	viewport viewport.Model
	width    int
}

// NewDocsModel creates a documentation panel. footer is shown as a success
// line beneath the rendered markdown.
func NewDocsModel(markdown, footer string, theme themes.Theme) DocsModel {
	m := DocsModel{
		theme:    theme,
		markdown: markdown,
		footer:   footer,
		viewport: viewport.New(80, 20),
		width:    80,
	}
	m.render()
	return m
}

// Resize re-wraps the markdown for the new size.
func (m *DocsModel) Resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height, 1)
	if width != m.width {
		m.width = width
		m.render()
	}
}

func (m *DocsModel) render() {
	content, err := RenderMarkdown(m.markdown, m.theme.GlamourStyle, m.width)
	if err != nil {
		slog.Warn("Failed to render documentation, showing raw markdown", "error", err)
		content = m.markdown
	}
	if m.footer != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.theme.StatusSuccess.Render("🎓 "+m.footer))
	}
	m.viewport.SetContent(content)
}

// Update handles scrolling.
func (m DocsModel) Update(msg tea.Msg) (DocsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the documentation.
func (m DocsModel) View() string {
	return m.viewport.View()
}

// RenderMarkdown renders markdown for the terminal with glamour.
func RenderMarkdown(markdown, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
