// Package themes holds the colour palettes and styles used by the dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	MetricBox     lipgloss.Style
	Bar           lipgloss.Style
	BarEmpty      lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Primary       lipgloss.Color
	Border        lipgloss.Color
	// GlamourStyle names the glamour style used for markdown panels.
	GlamourStyle string
}

type palette struct {
	primary, success, errc, info       lipgloss.Color
	fg, subtle, muted, border, surface lipgloss.Color
	glamour                            string
}

func build(p palette) Theme {
	return Theme{
		Primary:      p.primary,
		Border:       p.border,
		GlamourStyle: p.glamour,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(p.fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg),
		Label: lipgloss.NewStyle().
			Foreground(p.subtle),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.fg).
			Background(p.primary).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Background(p.surface).
			Padding(0, 2),
		MetricBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			MarginRight(1),
		Bar: lipgloss.NewStyle().
			Foreground(p.primary),
		BarEmpty: lipgloss.NewStyle().
			Foreground(p.border),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errc).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.info).
			Bold(true),
	}
}

// Default is the default theme.
var Default = build(palette{
	primary: lipgloss.Color("#0ea5e9"),
	success: lipgloss.Color("#10b981"),
	errc:    lipgloss.Color("#ef4444"),
	info:    lipgloss.Color("#3b82f6"),
	fg:      lipgloss.Color("#fafafa"),
	subtle:  lipgloss.Color("#a3a3a3"),
	muted:   lipgloss.Color("#737373"),
	border:  lipgloss.Color("#404040"),
	surface: lipgloss.Color("#262626"),
	glamour: "dark",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(palette{
	primary: lipgloss.Color("#89b4fa"),
	success: lipgloss.Color("#a6e3a1"),
	errc:    lipgloss.Color("#f38ba8"),
	info:    lipgloss.Color("#89dceb"),
	fg:      lipgloss.Color("#cdd6f4"),
	subtle:  lipgloss.Color("#a6adc8"),
	muted:   lipgloss.Color("#6c7086"),
	border:  lipgloss.Color("#45475a"),
	surface: lipgloss.Color("#313244"),
	glamour: "dracula",
})

// Light suits terminals with a light background.
var Light = build(palette{
	primary: lipgloss.Color("#0369a1"),
	success: lipgloss.Color("#047857"),
	errc:    lipgloss.Color("#b91c1c"),
	info:    lipgloss.Color("#1d4ed8"),
	fg:      lipgloss.Color("#171717"),
	subtle:  lipgloss.Color("#525252"),
	muted:   lipgloss.Color("#737373"),
	border:  lipgloss.Color("#d4d4d4"),
	surface: lipgloss.Color("#e5e5e5"),
	glamour: "light",
})

// Names lists the selectable theme names.
var Names = []string{"default", "catppuccin-mocha", "light"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	case "light":
		return Light
	default:
		return Default
	}
}
