package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParameters_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		input InputParameters
		want  InputParameters
	}{
		{
			name:  "in range is unchanged",
			input: DefaultInput(),
			want:  DefaultInput(),
		},
		{
			name: "below bounds",
			input: InputParameters{
				PortCapacity: 0, AverageVessels: -5, OperatingHours: -1,
				Weather: WeatherSevere, Cargo: CargoBulk,
			},
			want: InputParameters{
				PortCapacity: 1, AverageVessels: 1, OperatingHours: 0,
				Weather: WeatherSevere, Cargo: CargoBulk,
			},
		},
		{
			name: "above bounds",
			input: InputParameters{
				PortCapacity: 500, AverageVessels: 201, OperatingHours: 25,
				Weather: WeatherModerate, Cargo: CargoContainers,
			},
			want: InputParameters{
				PortCapacity: 100, AverageVessels: 200, OperatingHours: 24,
				Weather: WeatherModerate, Cargo: CargoContainers,
			},
		},
		{
			name:  "unknown enums fall back to defaults",
			input: InputParameters{PortCapacity: 10, AverageVessels: 10, OperatingHours: 10, Weather: "Foggy", Cargo: "Liquid"},
			want:  InputParameters{PortCapacity: 10, AverageVessels: 10, OperatingHours: 10, Weather: WeatherClear, Cargo: CargoGeneral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Clamp())
		})
	}
}

func TestParseCargo(t *testing.T) {
	tests := []struct {
		in   string
		want CargoType
	}{
		{"General Cargo", CargoGeneral},
		{"general-cargo", CargoGeneral},
		{"GeneralCargo", CargoGeneral},
		{"containers", CargoContainers},
		{" BULK ", CargoBulk},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCargo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCargo("liquid")
	assert.Error(t, err)
}

func TestParseWeather(t *testing.T) {
	got, err := ParseWeather("severe")
	require.NoError(t, err)
	assert.Equal(t, WeatherSevere, got)

	_, err = ParseWeather("hail")
	assert.Error(t, err)
}

func TestDefaultInput(t *testing.T) {
	in := DefaultInput()
	assert.Equal(t, 50, in.PortCapacity)
	assert.Equal(t, 100, in.AverageVessels)
	assert.Equal(t, 16, in.OperatingHours)
	assert.Equal(t, WeatherClear, in.Weather)
	assert.Equal(t, CargoGeneral, in.Cargo)
}
