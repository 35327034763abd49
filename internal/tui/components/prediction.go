package components

import (
	"fmt"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// RenderMetric renders a labelled value in a bordered box, with an optional
// delta line underneath.
func RenderMetric(theme themes.Theme, label, value, delta string) string {
	lines := []string{
		theme.Label.Render(label),
		theme.Value.Render(value),
	}
	if delta != "" {
		lines = append(lines, theme.StatusSuccess.Render("↑ "+delta))
	}
	return theme.MetricBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderPrediction renders the derived strategy, score and efficiency.
func RenderPrediction(theme themes.Theme, pred model.Prediction, width int) string {
	metrics := lipgloss.JoinVertical(lipgloss.Left,
		RenderMetric(theme, "Recommended Strategy", string(pred.Strategy), ""),
		RenderMetric(theme, "Optimization Score", fmt.Sprintf("%d/100", pred.Score), ""),
		RenderMetric(theme, "Expected Efficiency", fmt.Sprintf("%d%%", pred.Efficiency), ""),
	)

	bar := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
	)
	bar.Width = max(min(width-2, 40), 10)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Bold.Render("Predicted Strategy"),
		"",
		metrics,
		"",
		theme.Label.Render("Efficiency"),
		bar.ViewAs(float64(pred.Efficiency)/100),
	)
}

// RenderRunResult renders the outcome of an optimization run.
func RenderRunResult(theme themes.Theme, result model.RunResult) string {
	boxes := make([]string, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		boxes = append(boxes, RenderMetric(theme, string(o.Model), o.Result, o.Delta))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.StatusSuccess.Render("✓ "+result.Message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
	)
}
