package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/mattn/go-runewidth"
)

// BarSeries is one labelled bar.
type BarSeries struct {
	Label string
	Value int
}

// RenderBarChart draws horizontal bars scaled against maxValue.
func RenderBarChart(theme themes.Theme, bars []BarSeries, maxValue, width int) string {
	labelWidth := 0
	for _, b := range bars {
		labelWidth = max(labelWidth, runewidth.StringWidth(b.Label))
	}

	// label, spaces and a three digit value
	barWidth := max(width-labelWidth-6, 5)

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		filled := 0
		if maxValue > 0 {
			filled = min(b.Value, maxValue) * barWidth / maxValue
		}
		line := fmt.Sprintf("%s %s%s %3d",
			runewidth.FillRight(b.Label, labelWidth),
			theme.Bar.Render(strings.Repeat("█", filled)),
			theme.BarEmpty.Render(strings.Repeat("░", barWidth-filled)),
			b.Value,
		)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ScatterPoint is a labelled (x, y) point on a 0–100 grid.
type ScatterPoint struct {
	Label string
	X     int
	Y     int
}

var pointMarkers = []rune{'●', '▲', '■', '◆'}

// RenderScatter plots points on a width x height grid covering 0–100 on both
// axes, followed by a legend.
func RenderScatter(theme themes.Theme, points []ScatterPoint, xLabel, yLabel string, width, height int) string {
	width = max(width, 20)
	height = max(height, 5)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range points {
		col := clampPct(p.X) * (width - 1) / 100
		row := (height - 1) - clampPct(p.Y)*(height-1)/100
		grid[row][col] = pointMarkers[i%len(pointMarkers)]
	}

	var b strings.Builder
	b.WriteString(theme.Label.Render(yLabel))
	b.WriteString("\n")
	for r, line := range grid {
		axis := "    │"
		switch r {
		case 0:
			axis = "100 │"
		case height - 1:
			axis = "  0 │"
		}
		b.WriteString(theme.Label.Render(axis))
		b.WriteString(theme.Bar.Render(string(line)))
		b.WriteString("\n")
	}
	b.WriteString(theme.Label.Render("    └" + strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf("     0%s100  %s", strings.Repeat(" ", max(width-4, 1)), xLabel)))

	legend := make([]string, 0, len(points))
	for i, p := range points {
		legend = append(legend, fmt.Sprintf("%c %s (%d, %d)", pointMarkers[i%len(pointMarkers)], p.Label, p.X, p.Y))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Normal.Render(strings.Join(legend, "   ")))

	return b.String()
}

func clampPct(v int) int {
	return min(max(v, 0), 100)
}
