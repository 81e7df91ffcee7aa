package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wine-quality-service/internal/core/domain"
)

// MockArtifactStore is a mock of ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Save(ctx context.Context, artifact *domain.ModelArtifact) (string, string, error) {
	args := m.Called(ctx, artifact)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockArtifactStore) Load(ctx context.Context) (*domain.ModelArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelArtifact), args.Error(1)
}

// MockDatasetReader is a mock of DatasetReader.
type MockDatasetReader struct {
	mock.Mock
}

func (m *MockDatasetReader) Read(ctx context.Context, path string) (*domain.Dataset, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

// MockModelFitter is a mock of ModelFitter.
type MockModelFitter struct {
	mock.Mock
}

func (m *MockModelFitter) Fit(ctx context.Context, x *domain.Frame, y []float64) (domain.Regressor, error) {
	args := m.Called(ctx, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Regressor), args.Error(1)
}

// MockRegressor is a mock of Regressor.
type MockRegressor struct {
	mock.Mock
}

func (m *MockRegressor) Predict(frame *domain.Frame) ([]float64, error) {
	args := m.Called(frame)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

// EchoRegressor predicts the alcohol column of each row. Tests use it to
// check that a response belongs to the request that produced it.
type EchoRegressor struct{}

func (EchoRegressor) Predict(frame *domain.Frame) ([]float64, error) {
	rows, cols := frame.Data.Dims()
	out := make([]float64, rows)
	for i := range out {
		out[i] = frame.Data.At(i, cols-1)
	}
	return out, nil
}
