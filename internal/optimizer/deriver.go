// Package optimizer derives the dashboard's display values from form input
// and holds the fixed comparison data shown alongside them.
//
// Nothing here solves an optimization problem. The recommended strategy is a
// lookup on cargo type and the score and efficiency are simple arithmetic on
// the numeric inputs.
package optimizer

import "github.com/Veraticus/portops/internal/model"

const (
	baseEfficiency  = 85
	efficiencySlope = 15 // percent of score added on top of the base
	maxPercent      = 100
)

var strategyByCargo = map[model.CargoType]model.Strategy{
	model.CargoGeneral:    model.StrategyStandard,
	model.CargoContainers: model.StrategyParallel,
	model.CargoBulk:       model.StrategySequential,
}

// Derive computes the prediction for the given input. Input is clamped first,
// so Derive is defined for any value.
func Derive(in model.InputParameters) model.Prediction {
	in = in.Clamp()
	score := Score(in.PortCapacity, in.AverageVessels, in.OperatingHours)
	return model.Prediction{
		Strategy:   StrategyFor(in.Cargo),
		Score:      score,
		Efficiency: Efficiency(score),
	}
}

// StrategyFor returns the strategy recommended for a cargo type.
// Unknown cargo types get the standard strategy.
func StrategyFor(cargo model.CargoType) model.Strategy {
	if s, ok := strategyByCargo[cargo]; ok {
		return s
	}
	return model.StrategyStandard
}

// Score is the truncated mean of the three numeric inputs, clamped to [0, 100].
func Score(capacity, vessels, hours int) int {
	return model.ClampInt((capacity+vessels+hours)/3, 0, maxPercent)
}

// Efficiency maps a score onto the [85, 100] efficiency band.
func Efficiency(score int) int {
	score = model.ClampInt(score, 0, maxPercent)
	return min(maxPercent, baseEfficiency+efficiencySlope*score/100)
}
