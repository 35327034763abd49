package tui

import (
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Runner      *optimizer.Runner
	Input       model.InputParameters
	Width       int
	Height      int
	InitialTab  Tab
	ShowSidebar bool
	AltScreen   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Input:       model.DefaultInput(),
		Width:       80,
		Height:      24,
		InitialTab:  TabPrediction,
		ShowSidebar: true,
		AltScreen:   true,
	}
}

// WithRunner sets the runner used by the Run Optimization action.
func WithRunner(runner *optimizer.Runner) Option {
	return func(c *Config) {
		c.Runner = runner
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithInput sets the initial form values.
func WithInput(in model.InputParameters) Option {
	return func(c *Config) {
		c.Input = in.Clamp()
	}
}

// WithInitialTab selects the tab shown on start.
func WithInitialTab(tab Tab) Option {
	return func(c *Config) {
		c.InitialTab = tab
	}
}

// WithSidebar toggles the about/session sidebar on wide terminals.
func WithSidebar(enabled bool) Option {
	return func(c *Config) {
		c.ShowSidebar = enabled
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
