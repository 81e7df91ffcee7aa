package domain

import (
	"gonum.org/v1/gonum/mat"
)

// ModelState tracks the prediction server's load lifecycle.
type ModelState string

const (
	ModelStateUninitialized ModelState = "UNINITIALIZED"
	ModelStateLoading       ModelState = "LOADING"
	ModelStateReady         ModelState = "READY"
	ModelStateFailed        ModelState = "FAILED"
)

// Dataset is a labeled feature table read from disk.
type Dataset struct {
	Columns []string
	X       *mat.Dense
	Y       []float64
}

// Rows returns the number of labeled observations.
func (d *Dataset) Rows() int {
	return len(d.Y)
}

// TrainingMetrics are computed once on the held-out partition and persisted
// next to the model. The server never recomputes them.
type TrainingMetrics struct {
	MSE float64 `json:"mse"`
	R2  float64 `json:"r2"`
}

// ModelArtifact pairs a fitted regressor with its provenance metrics.
type ModelArtifact struct {
	Model   Regressor
	Metrics TrainingMetrics
}

// Regressor is the opaque scoring function: one prediction per frame row.
type Regressor interface {
	Predict(frame *Frame) ([]float64, error)
}

// TrainingReport summarizes a finished training run.
type TrainingReport struct {
	DatasetPath string
	ModelPath   string
	MetricsPath string
	TrainRows   int
	TestRows    int
	Metrics     TrainingMetrics
}

// PredictionResult is the response body of a successful prediction.
type PredictionResult struct {
	Name        string
	RollNo      string
	WineQuality float64
}
