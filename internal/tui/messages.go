package tui

import (
	"fmt"
	"strings"
)

// Tab identifies one of the dashboard pages.
type Tab int

// Dashboard tabs in display order.
const (
	TabPrediction Tab = iota
	TabComparison
	TabDataset
	TabDocumentation
	tabCount
)

var tabNames = [...]string{"Prediction", "Model Comparison", "Dataset Info", "Documentation"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

// ParseTab resolves a tab from its name or a short alias.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prediction", "predict", "1", "":
		return TabPrediction, nil
	case "comparison", "compare", "2":
		return TabComparison, nil
	case "dataset", "3":
		return TabDataset, nil
	case "documentation", "docs", "4":
		return TabDocumentation, nil
	default:
		return 0, fmt.Errorf("unknown tab %q", s)
	}
}

// clearStatusMsg hides the error it was scheduled for.
type clearStatusMsg struct {
	seq int
}
