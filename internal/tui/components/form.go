package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldSlider fieldKind = iota
	fieldSelect
)

// Field order in the form.
const (
	FieldPortCapacity = iota
	FieldAverageVessels
	FieldOperatingHours
	FieldWeather
	FieldCargo
	fieldCount
)

const largeStep = 10

type formField struct {
	label   string
	options []string
	kind    fieldKind
	min     int
	max     int
	value   int // slider value, or selected option index
}

func (f *formField) adjust(delta int) bool {
	before := f.value
	switch f.kind {
	case fieldSlider:
		f.value = model.ClampInt(f.value+delta, f.min, f.max)
	case fieldSelect:
		n := len(f.options)
		f.value = ((f.value+delta)%n + n) % n
	}
	return f.value != before
}

// FormKeyMap holds the bindings the form responds to.
type FormKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	StepDown key.Binding
	StepUp   key.Binding
	First    key.Binding
	Last     key.Binding
}

// DefaultFormKeyMap returns the default form bindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next field"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "increase"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("shift+left", "H", "pgdown"),
			key.WithHelp("Shift+←/PgDn", "decrease by 10"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("shift+right", "L", "pgup"),
			key.WithHelp("Shift+→/PgUp", "increase by 10"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "minimum"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "maximum"),
		),
	}
}

// FormModel is the prediction input form: three sliders and two selects.
type FormModel struct {
	theme  themes.Theme
	keys   FormKeyMap
	fields []formField
	focus  int
	width  int
}

// NewFormModel creates a form populated from in. Out-of-range values are
// clamped.
func NewFormModel(in model.InputParameters, theme themes.Theme, keys FormKeyMap) FormModel {
	in = in.Clamp()

	weather := make([]string, len(model.WeatherConditions))
	for i, w := range model.WeatherConditions {
		weather[i] = string(w)
	}
	cargo := make([]string, len(model.CargoTypes))
	for i, c := range model.CargoTypes {
		cargo[i] = string(c)
	}

	fields := make([]formField, fieldCount)
	fields[FieldPortCapacity] = formField{
		label: "Port Capacity (vessels/day)", kind: fieldSlider,
		min: model.MinPortCapacity, max: model.MaxPortCapacity, value: in.PortCapacity,
	}
	fields[FieldAverageVessels] = formField{
		label: "Average Vessels", kind: fieldSlider,
		min: model.MinAverageVessels, max: model.MaxAverageVessels, value: in.AverageVessels,
	}
	fields[FieldOperatingHours] = formField{
		label: "Operating Hours", kind: fieldSlider,
		min: model.MinOperatingHours, max: model.MaxOperatingHours, value: in.OperatingHours,
	}
	fields[FieldWeather] = formField{
		label: "Weather Condition", kind: fieldSelect,
		options: weather, value: indexOf(weather, string(in.Weather)),
	}
	fields[FieldCargo] = formField{
		label: "Cargo Type", kind: fieldSelect,
		options: cargo, value: indexOf(cargo, string(in.Cargo)),
	}

	return FormModel{
		theme:  theme,
		keys:   keys,
		fields: fields,
		width:  40,
	}
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}

// Input returns the current form values.
func (m FormModel) Input() model.InputParameters {
	return model.InputParameters{
		PortCapacity:   m.fields[FieldPortCapacity].value,
		AverageVessels: m.fields[FieldAverageVessels].value,
		OperatingHours: m.fields[FieldOperatingHours].value,
		Weather:        model.WeatherCondition(m.fields[FieldWeather].options[m.fields[FieldWeather].value]),
		Cargo:          model.CargoType(m.fields[FieldCargo].options[m.fields[FieldCargo].value]),
	}
}

// Focus returns the index of the focused field.
func (m FormModel) Focus() int {
	return m.focus
}

// Resize sets the width available to the form.
func (m *FormModel) Resize(width int) {
	m.width = width
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	changed := false
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
	case key.Matches(keyMsg, m.keys.Down):
		m.focus = (m.focus + 1) % len(m.fields)
	case key.Matches(keyMsg, m.keys.Decrease):
		changed = m.fields[m.focus].adjust(-1)
	case key.Matches(keyMsg, m.keys.Increase):
		changed = m.fields[m.focus].adjust(1)
	case key.Matches(keyMsg, m.keys.StepDown):
		changed = m.fields[m.focus].adjust(-m.step())
	case key.Matches(keyMsg, m.keys.StepUp):
		changed = m.fields[m.focus].adjust(m.step())
	case key.Matches(keyMsg, m.keys.First):
		changed = m.fields[m.focus].adjust(-m.fields[m.focus].max)
	case key.Matches(keyMsg, m.keys.Last):
		changed = m.fields[m.focus].adjust(m.fields[m.focus].max)
	}

	if !changed {
		return m, nil
	}
	in := m.Input()
	return m, func() tea.Msg {
		return InputChangedMsg{Input: in}
	}
}

// step is the large increment for the focused field. Selects always move by
// one option.
func (m FormModel) step() int {
	if m.fields[m.focus].kind == fieldSelect {
		return 1
	}
	return largeStep
}

// View renders the form.
func (m FormModel) View() string {
	lines := []string{m.theme.Bold.Render("Input Port Parameters"), ""}
	for i, f := range m.fields {
		lines = append(lines, m.renderField(i, f), "")
	}
	return strings.Join(lines, "\n")
}

func (m FormModel) renderField(i int, f formField) string {
	cursor := "  "
	label := m.theme.Label.Render(f.label)
	if i == m.focus {
		cursor = m.theme.Selected.Render("▸ ")
		label = m.theme.Selected.Render(f.label)
	}

	var control string
	switch f.kind {
	case fieldSlider:
		control = m.renderSlider(f)
	case fieldSelect:
		control = m.renderSelect(f)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cursor+label, "  "+control)
}

func (m FormModel) renderSlider(f formField) string {
	value := fmt.Sprintf("%3d", f.value)
	bounds := fmt.Sprintf("%d", f.min)
	upper := fmt.Sprintf("%d", f.max)

	// cursor prefix, spaces and the three numbers
	trackWidth := m.width - 2 - len(value) - len(bounds) - len(upper) - 4
	trackWidth = max(trackWidth, 10)

	pos := 0
	if f.max > f.min {
		pos = (f.value - f.min) * (trackWidth - 1) / (f.max - f.min)
	}

	track := m.theme.Bar.Render(strings.Repeat("━", pos)) +
		m.theme.Selected.Render("●") +
		m.theme.BarEmpty.Render(strings.Repeat("─", trackWidth-pos-1))

	return fmt.Sprintf("%s %s %s %s",
		m.theme.Label.Render(bounds),
		track,
		m.theme.Label.Render(upper),
		m.theme.Value.Render(value),
	)
}

func (m FormModel) renderSelect(f formField) string {
	parts := make([]string, len(f.options))
	for i, o := range f.options {
		if i == f.value {
			parts[i] = m.theme.Selected.Render("◉ " + o)
		} else {
			parts[i] = m.theme.Label.Render("○ " + o)
		}
	}
	return strings.Join(parts, "  ")
}
