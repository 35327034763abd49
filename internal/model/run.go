package model

import "time"

// RunRecord is a journaled optimization run.
type RunRecord struct {
	CreatedAt  time.Time       `json:"created_at" yaml:"created_at"`
	Input      InputParameters `json:"input" yaml:"input"`
	Prediction Prediction      `json:"prediction" yaml:"prediction"`
	ID         int64           `json:"id" yaml:"id"`
}

// RunResult is what an optimization run reports back to the user.
type RunResult struct {
	Message    string          `json:"message" yaml:"message"`
	Outcomes   []ModelOutcome  `json:"outcomes" yaml:"outcomes"`
	Input      InputParameters `json:"input" yaml:"input"`
	Prediction Prediction      `json:"prediction" yaml:"prediction"`
}
