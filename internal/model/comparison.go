package model

// ModelName identifies one of the compared approaches.
type ModelName string

// Compared approaches.
const (
	ModelMILP          ModelName = "MILP"
	ModelNeuralNetwork ModelName = "Neural Network"
	ModelRandomForest  ModelName = "Random Forest"
)

// ComparisonRow is one line of the model performance table.
type ComparisonRow struct {
	Model     ModelName `json:"model" yaml:"model"`
	Accuracy  int       `json:"accuracy" yaml:"accuracy"`
	Precision int       `json:"precision" yaml:"precision"`
	Recall    int       `json:"recall" yaml:"recall"`
	F1        int       `json:"f1_score" yaml:"f1_score"`
}

// TradeOffPoint places a model on the speed vs optimality chart.
type TradeOffPoint struct {
	Model      ModelName `json:"model" yaml:"model"`
	Speed      int       `json:"speed" yaml:"speed"`
	Optimality int       `json:"optimality" yaml:"optimality"`
}

// ModelOutcome is the headline result of a model after an optimization run.
type ModelOutcome struct {
	Model  ModelName `json:"model" yaml:"model"`
	Result string    `json:"result" yaml:"result"`
	Delta  string    `json:"delta" yaml:"delta"`
}
