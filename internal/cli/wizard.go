package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Veraticus/portops/internal/model"
)

// PromptInput collects InputParameters interactively, starting from
// initial. Accessible mode is used when in is not a terminal.
func PromptInput(in io.Reader, out io.Writer, initial model.InputParameters) (model.InputParameters, error) {
	initial = initial.Clamp()
	var (
		capacity = strconv.Itoa(initial.PortCapacity)
		vessels  = strconv.Itoa(initial.AverageVessels)
		hours    = strconv.Itoa(initial.OperatingHours)
		weather  = initial.Weather
		cargo    = initial.Cargo
	)

	weatherOpts := make([]huh.Option[model.WeatherCondition], 0, len(model.WeatherConditions))
	for _, w := range model.WeatherConditions {
		weatherOpts = append(weatherOpts, huh.NewOption(string(w), w))
	}
	cargoOpts := make([]huh.Option[model.CargoType], 0, len(model.CargoTypes))
	for _, c := range model.CargoTypes {
		cargoOpts = append(cargoOpts, huh.NewOption(string(c), c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Port Capacity").
				Description(fmt.Sprintf("%d-%d", model.MinPortCapacity, model.MaxPortCapacity)).
				Value(&capacity).
				Validate(boundedInt(model.MinPortCapacity, model.MaxPortCapacity)),
			huh.NewInput().
				Title("Average Vessels").
				Description(fmt.Sprintf("%d-%d", model.MinAverageVessels, model.MaxAverageVessels)).
				Value(&vessels).
				Validate(boundedInt(model.MinAverageVessels, model.MaxAverageVessels)),
			huh.NewInput().
				Title("Operating Hours").
				Description(fmt.Sprintf("%d-%d", model.MinOperatingHours, model.MaxOperatingHours)).
				Value(&hours).
				Validate(boundedInt(model.MinOperatingHours, model.MaxOperatingHours)),
			huh.NewSelect[model.WeatherCondition]().
				Title("Weather Conditions").
				Options(weatherOpts...).
				Value(&weather),
			huh.NewSelect[model.CargoType]().
				Title("Cargo Type").
				Options(cargoOpts...).
				Value(&cargo),
		),
	).
		WithInput(in).
		WithOutput(out)

	if !isTerminal(in) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return initial, fmt.Errorf("input form failed: %w", err)
	}

	result := model.InputParameters{Weather: weather, Cargo: cargo}
	// Validate has already accepted these.
	result.PortCapacity, _ = strconv.Atoi(strings.TrimSpace(capacity))
	result.AverageVessels, _ = strconv.Atoi(strings.TrimSpace(vessels))
	result.OperatingHours, _ = strconv.Atoi(strings.TrimSpace(hours))
	return result.Clamp(), nil
}

func boundedInt(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
