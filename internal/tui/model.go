// Package tui implements the interactive port operations dashboard.
package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/tui/components"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	lastError  error
	runner     *optimizer.Runner
	lastRun    *model.RunResult
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	form       components.FormModel
	comparison components.ComparisonModel
	docs       components.DocsModel
	session    components.SessionPanelModel
	config     Config
	input      model.InputParameters
	prediction model.Prediction
	dataset    model.DatasetInfo
	width      int
	height     int
	runSeq     int
	errSeq     int
	tab        Tab
	running    bool
	quitting   bool
}

// New creates the dashboard model.
func New(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(ctx, cfg)
}

func newModel(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Runner == nil {
		cfg.Runner = optimizer.NewRunner()
	}

	in := cfg.Input.Clamp()
	keymap := DefaultKeyMap()
	m := Model{
		ctx:        ctx,
		runner:     cfg.Runner,
		theme:      cfg.Theme,
		keymap:     keymap,
		help:       help.New(),
		form:       components.NewFormModel(in, cfg.Theme, keymap.Form),
		comparison: components.NewComparisonModel(optimizer.Comparison(), optimizer.TradeOff(), cfg.Theme),
		docs:       components.NewDocsModel(optimizer.Documentation, optimizer.DocsReadyMessage, cfg.Theme),
		session:    components.NewSessionPanelModel(cfg.Theme),
		config:     cfg,
		input:      in,
		prediction: optimizer.Derive(in),
		dataset:    optimizer.Dataset(),
		width:      cfg.Width,
		height:     cfg.Height,
		tab:        cfg.InitialTab,
	}
	m.handleResize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
		return m, m.handleTabKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case components.InputChangedMsg:
		m.input = msg.Input
		m.prediction = optimizer.Derive(msg.Input)
		// A previous or in-flight run no longer matches the form.
		m.lastRun = nil
		m.runSeq++

	case components.RunCompleteMsg:
		m.running = false
		m.session, _ = m.session.Update(msg)
		if msg.Err != nil {
			slog.Error("Optimization run failed", "error", msg.Err)
			m.lastError = msg.Err
			m.errSeq++
			cmds = append(cmds, clearStatusAfter(statusTimeout, m.errSeq))
			break
		}
		if msg.Seq != m.runSeq {
			slog.Debug("Discarding result for outdated inputs", "seq", msg.Seq)
			break
		}
		result := msg.Result
		m.lastRun = &result

	case clearStatusMsg:
		if msg.seq == m.errSeq {
			m.lastError = nil
		}
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles keys that work on every tab.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return nil, true
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
		return nil, true
	case key.Matches(msg, m.keymap.Tab1):
		m.tab = TabPrediction
		return nil, true
	case key.Matches(msg, m.keymap.Tab2):
		m.tab = TabComparison
		return nil, true
	case key.Matches(msg, m.keymap.Tab3):
		m.tab = TabDataset
		return nil, true
	case key.Matches(msg, m.keymap.Tab4):
		m.tab = TabDocumentation
		return nil, true
	}
	return nil, false
}

// handleTabKeys routes a key to the active tab.
func (m *Model) handleTabKeys(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch m.tab {
	case TabPrediction:
		switch {
		case key.Matches(msg, m.keymap.Run):
			if m.running {
				return nil
			}
			m.running = true
			m.runSeq++
			return m.runOptimization()
		case key.Matches(msg, m.keymap.Reset):
			m.form = components.NewFormModel(model.DefaultInput(), m.theme, m.keymap.Form)
			m.handleResize()
			in := m.form.Input()
			return func() tea.Msg { return components.InputChangedMsg{Input: in} }
		}
		m.form, cmd = m.form.Update(msg)

	case TabComparison:
		m.comparison, cmd = m.comparison.Update(msg)

	case TabDocumentation:
		m.docs, cmd = m.docs.Update(msg)
	}

	return cmd
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	mw := m.mainWidth()
	m.form.Resize(max(mw/2-2, 30))
	m.comparison.Resize(mw)
	m.session.Resize(max(m.sidebarWidth()-2, 10))
	m.session.SetCompact(m.sidebarWidth() == 0)
	m.help.Width = m.width
	// title, tagline, tabs, spacing and footer
	m.docs.Resize(mw, m.height-8)
}

// sidebarWidth is zero when the sidebar is hidden.
func (m Model) sidebarWidth() int {
	if !m.config.ShowSidebar || m.width < 120 {
		return 0
	}
	return 34
}

func (m Model) mainWidth() int {
	w := m.width - 2
	if sw := m.sidebarWidth(); sw > 0 {
		w -= sw + 3
	}
	return max(w, 20)
}

// Tab returns the active tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Input returns the current form values.
func (m Model) Input() model.InputParameters {
	return m.input
}

// Prediction returns the values derived from the current input.
func (m Model) Prediction() model.Prediction {
	return m.prediction
}

// LastRun returns the most recent successful run, if any.
func (m Model) LastRun() *model.RunResult {
	return m.lastRun
}
