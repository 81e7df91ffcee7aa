package domain

import "errors"

// ============================================================================
// Training Errors
// ============================================================================

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrInvalidDataset  = errors.New("invalid dataset")
	ErrTrainingFailed  = errors.New("model training failed")
)

// ============================================================================
// Serving Errors
// ============================================================================

var (
	ErrModelLoad        = errors.New("model load failed")
	ErrInvalidInput     = errors.New("invalid input")
	ErrModelUnavailable = errors.New("model not loaded")
	ErrPredictionFailed = errors.New("prediction failed")
)
