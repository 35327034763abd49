package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// RenderDataset renders the dataset metrics followed by the numbered
// feature list.
func RenderDataset(theme themes.Theme, metrics []model.Metric, features []string, width int) string {
	boxes := make([]string, 0, len(metrics))
	for _, m := range metrics {
		boxes = append(boxes, RenderMetric(theme, m.Label, m.Value, ""))
	}

	// Flow metric boxes into as many rows as the width needs.
	var rows []string
	var row []string
	rowWidth := 0
	for _, box := range boxes {
		w := lipgloss.Width(box)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, box)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	list := make([]string, len(features))
	for i, f := range features {
		list[i] = fmt.Sprintf("%d. %s", i+1, f)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Bold.Render("Dataset Information"),
		"",
		strings.Join(rows, "\n"),
		"",
		theme.Bold.Render("Key Features"),
		theme.Normal.Render(strings.Join(list, "\n")),
	)
}
