package components

import (
	"strconv"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ComparisonModel renders the model performance table and its two charts.
type ComparisonModel struct {
	theme    themes.Theme
	table    table.Model
	rows     []model.ComparisonRow
	tradeOff []model.TradeOffPoint
	width    int
}

// NewComparisonModel creates the comparison panel.
func NewComparisonModel(rows []model.ComparisonRow, tradeOff []model.TradeOffPoint, theme themes.Theme) ComparisonModel {
	columns := []table.Column{
		{Title: "Model", Width: 16},
		{Title: "Accuracy", Width: 9},
		{Title: "Precision", Width: 9},
		{Title: "Recall", Width: 7},
		{Title: "F1-Score", Width: 9},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{
			string(r.Model),
			strconv.Itoa(r.Accuracy),
			strconv.Itoa(r.Precision),
			strconv.Itoa(r.Recall),
			strconv.Itoa(r.F1),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.Primary).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+2), // header and its border
		table.WithFocused(true),
		table.WithStyles(styles),
	)

	return ComparisonModel{
		theme:    theme,
		table:    t,
		rows:     rows,
		tradeOff: tradeOff,
		width:    80,
	}
}

// Rows returns the rows behind the table.
func (m ComparisonModel) Rows() []model.ComparisonRow {
	return m.rows
}

// Resize sets the width available to the panel.
func (m *ComparisonModel) Resize(width int) {
	m.width = width
}

// Update forwards navigation keys to the table.
func (m ComparisonModel) Update(msg tea.Msg) (ComparisonModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the panel.
func (m ComparisonModel) View() string {
	bars := make([]BarSeries, 0, len(m.rows))
	for _, r := range m.rows {
		bars = append(bars, BarSeries{Label: string(r.Model), Value: r.Accuracy})
	}

	points := make([]ScatterPoint, 0, len(m.tradeOff))
	for _, p := range m.tradeOff {
		points = append(points, ScatterPoint{Label: string(p.Model), X: p.Speed, Y: p.Optimality})
	}

	half := max((m.width-4)/2, 30)

	accuracy := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("Accuracy Comparison"),
		"",
		RenderBarChart(m.theme, bars, 100, half),
	)
	tradeOff := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("Speed vs Optimality Trade-off"),
		"",
		RenderScatter(m.theme, points, "Speed (score)", "Optimality (score)", half-6, 6),
	)

	var charts string
	if m.width >= 2*half+4 {
		charts = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(accuracy),
			"    ",
			tradeOff,
		)
	} else {
		charts = lipgloss.JoinVertical(lipgloss.Left, accuracy, "", tradeOff)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("Model Performance Comparison"),
		"",
		m.table.View(),
		"",
		charts,
	)
}
