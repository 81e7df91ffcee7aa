package ports

import (
	"context"

	"wine-quality-service/internal/core/domain"
)

// DatasetReader loads a labeled training table.
type DatasetReader interface {
	Read(ctx context.Context, path string) (*domain.Dataset, error)
}

// ArtifactStore persists and restores the model/metrics pair.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *domain.ModelArtifact) (modelPath, metricsPath string, err error)
	Load(ctx context.Context) (*domain.ModelArtifact, error)
}

// ModelFitter fits a regressor on a feature frame and its labels.
type ModelFitter interface {
	Fit(ctx context.Context, x *domain.Frame, y []float64) (domain.Regressor, error)
}
