// Package dataset describes the fixtures a model-overview verification pass
// is computed from: task-type flags plus the cohorts the dashboard shows.
//
// Everything here is read-only once loaded. Values are pre-formatted display
// text; nothing in this package parses or computes metrics.
package dataset

// MetricKey names a metric column in the model-overview cohort table.
type MetricKey string

const (
	Accuracy             MetricKey = "accuracy"
	F1Score              MetricKey = "f1Score"
	PrecisionScore       MetricKey = "precisionScore"
	RecallScore          MetricKey = "recallScore"
	FalsePositiveRate    MetricKey = "falsePositiveRate"
	FalseNegativeRate    MetricKey = "falseNegativeRate"
	SelectionRate        MetricKey = "selectionRate"
	MacroF1Score         MetricKey = "macroF1Score"
	MacroPrecisionScore  MetricKey = "macroPrecisionScore"
	MacroRecallScore     MetricKey = "macroRecallScore"
	MeanAbsoluteError    MetricKey = "meanAbsoluteError"
	MeanSquaredError     MetricKey = "meanSquaredError"
	MeanPrediction       MetricKey = "meanPrediction"
	ExactMatchRatio      MetricKey = "exactMatchRatio"
	HammingScore         MetricKey = "hammingScore"
	MeanAveragePrecision MetricKey = "meanAveragePrecision"
	AveragePrecision     MetricKey = "averagePrecision"
	AverageRecall        MetricKey = "averageRecall"
)

// Cohort is one named subset of the evaluation data as the dashboard renders it.
type Cohort struct {
	Name       string               `json:"name" yaml:"name"`
	SampleSize string               `json:"sampleSize" yaml:"sampleSize"`
	Metrics    map[MetricKey]string `json:"metrics" yaml:"metrics"`
}

// Metric returns the display value for key, or "" when the fixture has none.
func (c Cohort) Metric(key MetricKey) string {
	return c.Metrics[key]
}

// ModelOverview holds the cohorts shown on the model-overview page.
// NewCohort is nil when the fixture does not describe a created cohort.
type ModelOverview struct {
	InitialCohorts []Cohort `json:"initialCohorts" yaml:"initialCohorts"`
	NewCohort      *Cohort  `json:"newCohort,omitempty" yaml:"newCohort,omitempty"`
}

// Descriptor is the dataset shape a scenario verifies against.
type Descriptor struct {
	Name string `json:"name" yaml:"name"`

	IsRegression          bool `json:"isRegression,omitempty" yaml:"isRegression,omitempty"`
	IsImageClassification bool `json:"isImageClassification,omitempty" yaml:"isImageClassification,omitempty"`
	IsMultiLabel          bool `json:"isMultiLabel,omitempty" yaml:"isMultiLabel,omitempty"`
	IsObjectDetection     bool `json:"isObjectDetection,omitempty" yaml:"isObjectDetection,omitempty"`
	IsMulticlass          bool `json:"isMulticlass,omitempty" yaml:"isMulticlass,omitempty"`
	IsBinary              bool `json:"isBinary,omitempty" yaml:"isBinary,omitempty"`
	IsVision              bool `json:"isVision,omitempty" yaml:"isVision,omitempty"`

	ModelOverview ModelOverview `json:"modelOverviewData" yaml:"modelOverviewData"`
}

// FirstCohortName returns the name of the first initial cohort, if any.
func (d *Descriptor) FirstCohortName() (string, bool) {
	if len(d.ModelOverview.InitialCohorts) == 0 {
		return "", false
	}
	return d.ModelOverview.InitialCohorts[0].Name, true
}
