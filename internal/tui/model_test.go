package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/tui/components"
	tuitesting "github.com/Veraticus/portops/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) SaveRun(context.Context, *model.RunRecord) error { return errors.New("disk full") }
func (failingStore) ListRuns(context.Context, int) ([]model.RunRecord, error) {
	return nil, nil
}
func (failingStore) GetRun(context.Context, int64) (*model.RunRecord, error) { return nil, nil }
func (failingStore) Close() error                                            { return nil }

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithSize(100, 40)}, opts...)
	return New(context.Background(), opts...)
}

// send delivers msg and feeds every resulting message back into the model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	for _, follow := range tuitesting.Drain(cmd) {
		if _, ok := follow.(tea.QuitMsg); ok {
			continue
		}
		if _, ok := follow.(clearStatusMsg); ok {
			continue
		}
		m = send(t, m, follow)
	}
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, TabPrediction, m.Tab())
	assert.Equal(t, model.DefaultInput(), m.Input())
	assert.Equal(t, model.Prediction{Strategy: model.StrategyStandard, Score: 55, Efficiency: 93}, m.Prediction())
	assert.Nil(t, m.LastRun())
	assert.Nil(t, m.Init())
}

func TestModel_TabNavigation(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tuitesting.KeyTab())
	assert.Equal(t, TabComparison, m.Tab())

	m = send(t, m, tuitesting.KeyPress("4"))
	assert.Equal(t, TabDocumentation, m.Tab())

	m = send(t, m, tuitesting.KeyTab())
	assert.Equal(t, TabPrediction, m.Tab(), "wraps forward")

	m = send(t, m, tuitesting.KeyShiftTab())
	assert.Equal(t, TabDocumentation, m.Tab(), "wraps backward")

	m = send(t, m, tuitesting.KeyPress("3"))
	assert.Equal(t, TabDataset, m.Tab())
}

func TestModel_InputChangeRecomputes(t *testing.T) {
	m := newTestModel(t)

	for range components.FieldCargo {
		m = send(t, m, tuitesting.KeyDown())
	}
	m = send(t, m, tuitesting.KeyRight())
	assert.Equal(t, model.CargoContainers, m.Input().Cargo)
	assert.Equal(t, model.StrategyParallel, m.Prediction().Strategy)

	m = send(t, m, tuitesting.KeyRight())
	assert.Equal(t, model.StrategySequential, m.Prediction().Strategy)
}

func TestModel_SliderChangeRecomputesScore(t *testing.T) {
	m := newTestModel(t, WithInput(model.InputParameters{
		PortCapacity: 100, AverageVessels: 200, OperatingHours: 0,
	}))
	assert.Equal(t, 100, m.Prediction().Score)

	// capacity 100 -> 10 gives (10+200+0)/3 = 70
	for range 9 {
		m = send(t, m, tuitesting.KeyShiftLeft())
	}
	assert.Equal(t, 10, m.Input().PortCapacity)
	assert.Equal(t, 70, m.Prediction().Score)
	assert.Equal(t, 95, m.Prediction().Efficiency)
}

func TestModel_RunOptimization(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tuitesting.KeyPress("r"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Contains(t, tuitesting.StripANSI(m.View()), "Running optimization...")

	_, again := m.Update(tuitesting.KeyPress("r"))
	assert.Nil(t, again, "a second run is ignored while one is in flight")

	m = send(t, m, cmd())
	assert.False(t, m.running)
	require.NotNil(t, m.LastRun())
	assert.Equal(t, optimizer.RunSuccessMessage, m.LastRun().Message)
	assert.Contains(t, tuitesting.StripANSI(m.View()), "All models agree on the optimal strategy")

	// changing the form invalidates the displayed run
	m = send(t, m, tuitesting.KeyRight())
	assert.Nil(t, m.LastRun())
}

func TestModel_RunOptimizationError(t *testing.T) {
	prev := statusTimeout
	statusTimeout = time.Millisecond
	t.Cleanup(func() { statusTimeout = prev })

	runner := optimizer.NewRunner(optimizer.WithStore(failingStore{}))
	m := newTestModel(t, WithRunner(runner))

	m = send(t, m, tuitesting.KeyEnter())
	assert.Nil(t, m.LastRun())
	require.Error(t, m.lastError)
	assert.Contains(t, tuitesting.StripANSI(m.View()), "Error: failed to record run: disk full")

	m = send(t, m, clearStatusMsg{seq: m.errSeq})
	assert.NoError(t, m.lastError)
}

func TestModel_StaleClearKeepsNewerError(t *testing.T) {
	prev := statusTimeout
	statusTimeout = time.Millisecond
	t.Cleanup(func() { statusTimeout = prev })

	runner := optimizer.NewRunner(optimizer.WithStore(failingStore{}))
	m := newTestModel(t, WithRunner(runner))

	m = send(t, m, tuitesting.KeyEnter())
	first := m.errSeq
	m = send(t, m, tuitesting.KeyEnter())
	require.Error(t, m.lastError)

	m = send(t, m, clearStatusMsg{seq: first})
	assert.Error(t, m.lastError, "an older timer leaves the newer error visible")

	m = send(t, m, clearStatusMsg{seq: m.errSeq})
	assert.NoError(t, m.lastError)
}

func TestModel_EditDuringRunDiscardsResult(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tuitesting.KeyPress("r"))
	m = updated.(Model)
	require.NotNil(t, cmd)

	m = send(t, m, tuitesting.KeyRight())
	assert.Equal(t, 51, m.Input().PortCapacity)

	m = send(t, m, cmd())
	assert.False(t, m.running)
	assert.Nil(t, m.LastRun(), "result for the previous inputs is not shown")
	assert.Equal(t, 1, m.session.Runs(), "the run still counts toward the session")

	m = send(t, m, tuitesting.KeyPress("r"))
	require.NotNil(t, m.LastRun())
	assert.Equal(t, m.Input(), m.LastRun().Input)
}

func TestModel_Reset(t *testing.T) {
	m := newTestModel(t, WithInput(model.InputParameters{PortCapacity: 5, AverageVessels: 5, OperatingHours: 5, Cargo: model.CargoBulk}))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, model.DefaultInput(), m.Input())
	assert.Equal(t, 55, m.Prediction().Score)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tuitesting.KeyPress("q"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := tuitesting.StripANSI(m.View())
	assert.NotContains(t, short, "decrease by 10")

	m = send(t, m, tuitesting.KeyPress("?"))
	assert.Contains(t, tuitesting.StripANSI(m.View()), "decrease by 10")
}

func TestModel_ViewPerTab(t *testing.T) {
	tests := []struct {
		tab  Tab
		want []string
	}{
		{TabPrediction, []string{"Input Port Parameters", "Recommended Strategy", "55/100", "93%"}},
		{TabComparison, []string{"Model Performance Comparison", "Random Forest", "Speed vs Optimality Trade-off"}},
		{TabDataset, []string{"Dataset Information", "Global Fishing Watch Anchorages", "5. Cargo Type"}},
		{TabDocumentation, []string{"Thesis Defense Documentation"}},
	}

	for _, tt := range tests {
		t.Run(tt.tab.String(), func(t *testing.T) {
			m := newTestModel(t, WithInitialTab(tt.tab))
			out := tuitesting.StripANSI(m.View())

			assert.Contains(t, out, "Port Operations Optimizer")
			assert.True(t, tuitesting.ContainsInOrder(out, "Prediction", "Model Comparison", "Dataset Info", "Documentation"))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestModel_SidebarOnWideTerminals(t *testing.T) {
	narrow := tuitesting.StripANSI(newTestModel(t).View())
	assert.NotContains(t, narrow, "Avg score")

	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	wide := tuitesting.StripANSI(m.View())
	assert.Contains(t, wide, "About")
	assert.Contains(t, wide, "Avg score")

	hidden := newTestModel(t, WithSidebar(false), WithSize(160, 50))
	assert.NotContains(t, tuitesting.StripANSI(hidden.View()), "Avg score")
}

func TestModel_CompactSessionWithoutSidebar(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tuitesting.KeyPress("r"))

	out := tuitesting.StripANSI(m.View())
	assert.Contains(t, out, "Runs: 1 | Avg score: 55")

	m = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	wide := tuitesting.StripANSI(m.View())
	assert.NotContains(t, wide, "Runs: 1 |")
	assert.Contains(t, wide, "Avg score:  55")
}

func TestParseTab(t *testing.T) {
	tests := map[string]Tab{
		"prediction": TabPrediction,
		"compare":    TabComparison,
		"3":          TabDataset,
		"docs":       TabDocumentation,
		" Docs ":     TabDocumentation,
	}
	for in, want := range tests {
		got, err := ParseTab(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTab("charts")
	assert.Error(t, err)
	assert.Equal(t, "Tab(9)", Tab(9).String())
}
