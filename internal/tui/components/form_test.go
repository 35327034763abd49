package components

import (
	"testing"

	"github.com/Veraticus/portops/internal/model"
	tuitesting "github.com/Veraticus/portops/internal/tui/testing"
	"github.com/Veraticus/portops/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func changedInput(t *testing.T, cmd tea.Cmd) model.InputParameters {
	t.Helper()
	require.NotNil(t, cmd, "expected an input change")
	msg, ok := cmd().(InputChangedMsg)
	require.True(t, ok, "expected InputChangedMsg")
	return msg.Input
}

func TestNewFormModel_Defaults(t *testing.T) {
	m := NewFormModel(model.DefaultInput(), themes.Default, DefaultFormKeyMap())

	assert.Equal(t, model.DefaultInput(), m.Input())
	assert.Equal(t, FieldPortCapacity, m.Focus())
}

func TestNewFormModel_ClampsInput(t *testing.T) {
	m := NewFormModel(model.InputParameters{PortCapacity: 999, AverageVessels: 0, OperatingHours: 99}, themes.Default, DefaultFormKeyMap())

	in := m.Input()
	assert.Equal(t, 100, in.PortCapacity)
	assert.Equal(t, 1, in.AverageVessels)
	assert.Equal(t, 24, in.OperatingHours)
	assert.Equal(t, model.WeatherClear, in.Weather)
	assert.Equal(t, model.CargoGeneral, in.Cargo)
}

func TestFormModel_SliderAdjust(t *testing.T) {
	m := NewFormModel(model.DefaultInput(), themes.Default, DefaultFormKeyMap())

	m, cmd := m.Update(tuitesting.KeyRight())
	assert.Equal(t, 51, changedInput(t, cmd).PortCapacity)

	m, cmd = m.Update(tuitesting.KeyShiftLeft())
	assert.Equal(t, 41, changedInput(t, cmd).PortCapacity)

	m, cmd = m.Update(tuitesting.KeyPress("L"))
	assert.Equal(t, 51, changedInput(t, cmd).PortCapacity)
	assert.Equal(t, 51, m.Input().PortCapacity)
}

func TestFormModel_SliderClampsAtBounds(t *testing.T) {
	in := model.DefaultInput()
	in.OperatingHours = 24
	m := NewFormModel(in, themes.Default, DefaultFormKeyMap())

	m, _ = m.Update(tuitesting.KeyDown())
	m, _ = m.Update(tuitesting.KeyDown())
	require.Equal(t, FieldOperatingHours, m.Focus())

	m, cmd := m.Update(tuitesting.KeyRight())
	assert.Nil(t, cmd, "no change at upper bound")
	assert.Equal(t, 24, m.Input().OperatingHours)

	for range 30 {
		m, _ = m.Update(tuitesting.KeyLeft())
	}
	assert.Equal(t, 0, m.Input().OperatingHours)
}

func TestFormModel_SelectCycles(t *testing.T) {
	m := NewFormModel(model.DefaultInput(), themes.Default, DefaultFormKeyMap())
	for range FieldCargo {
		m, _ = m.Update(tuitesting.KeyDown())
	}
	require.Equal(t, FieldCargo, m.Focus())

	m, cmd := m.Update(tuitesting.KeyRight())
	assert.Equal(t, model.CargoContainers, changedInput(t, cmd).Cargo)

	m, cmd = m.Update(tuitesting.KeyShiftRight())
	assert.Equal(t, model.CargoBulk, changedInput(t, cmd).Cargo)

	m, cmd = m.Update(tuitesting.KeyRight())
	assert.Equal(t, model.CargoGeneral, changedInput(t, cmd).Cargo, "wraps around")

	_, cmd = m.Update(tuitesting.KeyLeft())
	assert.Equal(t, model.CargoBulk, changedInput(t, cmd).Cargo)
}

func TestFormModel_FocusWraps(t *testing.T) {
	m := NewFormModel(model.DefaultInput(), themes.Default, DefaultFormKeyMap())

	m, cmd := m.Update(tuitesting.KeyUp())
	assert.Nil(t, cmd)
	assert.Equal(t, FieldCargo, m.Focus())

	m, _ = m.Update(tuitesting.KeyDown())
	assert.Equal(t, FieldPortCapacity, m.Focus())
}

func TestFormModel_View(t *testing.T) {
	m := NewFormModel(model.DefaultInput(), themes.Default, DefaultFormKeyMap())
	m.Resize(60)

	out := tuitesting.StripANSI(m.View())
	assert.True(t, tuitesting.ContainsInOrder(out,
		"Port Capacity (vessels/day)",
		"Average Vessels",
		"Operating Hours",
		"Weather Condition",
		"Cargo Type",
	))
	assert.Contains(t, out, "◉ Clear")
	assert.Contains(t, out, "◉ General Cargo")
	assert.Contains(t, out, " 50")
	assert.Contains(t, out, "▸ Port Capacity")
}

func TestFormModel_PageKeysStepByTen(t *testing.T) {
	m := NewFormModel(model.DefaultInput(), themes.Default, DefaultFormKeyMap())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 60, changedInput(t, cmd).PortCapacity)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 50, changedInput(t, cmd).PortCapacity)
}

func TestFormModel_UsesConfiguredBindings(t *testing.T) {
	keys := DefaultFormKeyMap()
	keys.Increase = key.NewBinding(key.WithKeys("+"))
	m := NewFormModel(model.DefaultInput(), themes.Default, keys)

	_, cmd := m.Update(tuitesting.KeyRight())
	assert.Nil(t, cmd, "unbound key is ignored")

	_, cmd = m.Update(tuitesting.KeyPress("+"))
	assert.Equal(t, 51, changedInput(t, cmd).PortCapacity)
}
