package model

// DatasetInfo describes the data the models were evaluated against.
type DatasetInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Split      string   `json:"train_test_split" yaml:"train_test_split"`
	Features   []string `json:"features" yaml:"features"`
	Ports      int      `json:"ports" yaml:"ports"`
	Scenarios  int      `json:"scenarios" yaml:"scenarios"`
	NumFeature int      `json:"feature_count" yaml:"feature_count"`
	Classes    int      `json:"classes" yaml:"classes"`
}

// Metric is a labelled value in a static info panel.
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}
