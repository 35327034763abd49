package model

// Strategy is the recommended unloading/loading approach.
type Strategy string

// Strategy constants.
const (
	StrategyStandard   Strategy = "Standard"
	StrategyParallel   Strategy = "Parallel"
	StrategySequential Strategy = "Sequential"
)

// Prediction is the set of values derived from an InputParameters.
type Prediction struct {
	Strategy   Strategy `json:"strategy" yaml:"strategy"`
	Score      int      `json:"optimization_score" yaml:"optimization_score"`
	Efficiency int      `json:"expected_efficiency" yaml:"expected_efficiency"`
}
