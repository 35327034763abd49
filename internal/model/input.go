// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// Input bounds enforced by the form controls and by Clamp.
const (
	MinPortCapacity   = 1
	MaxPortCapacity   = 100
	MinAverageVessels = 1
	MaxAverageVessels = 200
	MinOperatingHours = 0
	MaxOperatingHours = 24
)

// Default input values shown when the dashboard first opens.
const (
	DefaultPortCapacity   = 50
	DefaultAverageVessels = 100
	DefaultOperatingHours = 16
)

// WeatherCondition is the weather at the port during the operation window.
type WeatherCondition string

// Weather condition constants.
const (
	WeatherClear    WeatherCondition = "Clear"
	WeatherModerate WeatherCondition = "Moderate"
	WeatherSevere   WeatherCondition = "Severe"
)

// WeatherConditions lists every weather condition in display order.
var WeatherConditions = []WeatherCondition{WeatherClear, WeatherModerate, WeatherSevere}

// IsValid reports whether w is a known weather condition.
func (w WeatherCondition) IsValid() bool {
	for _, c := range WeatherConditions {
		if c == w {
			return true
		}
	}
	return false
}

// CargoType is the kind of cargo being handled.
type CargoType string

// Cargo type constants.
const (
	CargoGeneral    CargoType = "General Cargo"
	CargoContainers CargoType = "Containers"
	CargoBulk       CargoType = "Bulk"
)

// CargoTypes lists every cargo type in display order.
var CargoTypes = []CargoType{CargoGeneral, CargoContainers, CargoBulk}

// IsValid reports whether c is a known cargo type.
func (c CargoType) IsValid() bool {
	for _, t := range CargoTypes {
		if t == c {
			return true
		}
	}
	return false
}

// ParseWeather resolves a weather name case-insensitively.
func ParseWeather(s string) (WeatherCondition, error) {
	for _, w := range WeatherConditions {
		if strings.EqualFold(string(w), strings.TrimSpace(s)) {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown weather condition %q", s)
}

// ParseCargo resolves a cargo name case-insensitively. Separators are
// ignored so "general-cargo", "general_cargo" and "GeneralCargo" all match.
func ParseCargo(s string) (CargoType, error) {
	want := normalizeName(s)
	for _, c := range CargoTypes {
		if normalizeName(string(c)) == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown cargo type %q", s)
}

func normalizeName(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// InputParameters holds the five values collected by the prediction form.
type InputParameters struct {
	Weather        WeatherCondition `json:"weather" yaml:"weather"`
	Cargo          CargoType        `json:"cargo" yaml:"cargo"`
	PortCapacity   int              `json:"port_capacity" yaml:"port_capacity"`
	AverageVessels int              `json:"average_vessels" yaml:"average_vessels"`
	OperatingHours int              `json:"operating_hours" yaml:"operating_hours"`
}

// DefaultInput returns the form's initial values.
func DefaultInput() InputParameters {
	return InputParameters{
		PortCapacity:   DefaultPortCapacity,
		AverageVessels: DefaultAverageVessels,
		OperatingHours: DefaultOperatingHours,
		Weather:        WeatherClear,
		Cargo:          CargoGeneral,
	}
}

// Clamp returns a copy with every numeric field forced into its bounds.
// Empty or unknown enum values fall back to the defaults.
func (p InputParameters) Clamp() InputParameters {
	p.PortCapacity = ClampInt(p.PortCapacity, MinPortCapacity, MaxPortCapacity)
	p.AverageVessels = ClampInt(p.AverageVessels, MinAverageVessels, MaxAverageVessels)
	p.OperatingHours = ClampInt(p.OperatingHours, MinOperatingHours, MaxOperatingHours)
	if !p.Weather.IsValid() {
		p.Weather = WeatherClear
	}
	if !p.Cargo.IsValid() {
		p.Cargo = CargoGeneral
	}
	return p
}

// ClampInt limits v to the closed range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
