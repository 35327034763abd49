package webapi

import "github.com/Veraticus/portops/internal/model"

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// PredictResponse echoes the clamped input with its derived values.
type PredictResponse struct {
	Input      model.InputParameters `json:"input"`
	Prediction model.Prediction      `json:"prediction"`
}

// ComparisonResponse is the static model comparison.
type ComparisonResponse struct {
	Rows     []model.ComparisonRow `json:"rows"`
	TradeOff []model.TradeOffPoint `json:"trade_off"`
}

// DatasetResponse describes the simulated training dataset.
type DatasetResponse struct {
	Dataset model.DatasetInfo `json:"dataset"`
	Metrics []model.Metric    `json:"metrics"`
}

// HistoryResponse lists journaled runs, newest first.
type HistoryResponse struct {
	Runs    []model.RunRecord `json:"runs"`
	Enabled bool              `json:"enabled"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
