package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"wine-quality-service/internal/adapters/secondary/artifact"
	"wine-quality-service/internal/adapters/secondary/dataset"
	"wine-quality-service/internal/core/domain"
	"wine-quality-service/internal/ml/forest"
	"wine-quality-service/internal/testutil"
)

// writeSyntheticWine writes a wine-shaped dataset whose quality is a linear
// function of alcohol plus small noise.
func writeSyntheticWine(t *testing.T, dir string, rows int) string {
	t.Helper()
	rng := rand.New(rand.NewSource(99))

	var b strings.Builder
	header := make([]string, 0, len(domain.FeatureColumns)+1)
	for _, c := range domain.FeatureColumns {
		header = append(header, `"`+c+`"`)
	}
	header = append(header, `"quality"`)
	b.WriteString(strings.Join(header, ";") + "\n")

	for i := 0; i < rows; i++ {
		cells := make([]string, 0, len(header))
		var alcohol float64
		for j := range domain.FeatureColumns {
			v := rng.Float64() * 10
			if j == len(domain.FeatureColumns)-1 {
				alcohol = 8 + rng.Float64()*7
				v = alcohol
			}
			cells = append(cells, fmt.Sprintf("%.4f", v))
		}
		quality := 0.6*alcohol - 1 + rng.NormFloat64()*0.05
		cells = append(cells, fmt.Sprintf("%.4f", quality))
		b.WriteString(strings.Join(cells, ";") + "\n")
	}

	path := filepath.Join(dir, "wine-quality.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func newFileTrainer(dir string) (*TrainerService, *artifact.FileStore) {
	store := artifact.NewFileStore(filepath.Join(dir, "artifacts", "model.gob"), filepath.Join(dir, "artifacts", "metrics.json"))
	svc := NewTrainerService(
		dataset.NewCSVReader(';', domain.LabelColumn),
		forest.NewFitter(forest.DefaultConfig()),
		store,
		0.2, 42,
	)
	return svc, store
}

func TestTrainerService_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeSyntheticWine(t, dir, 200)
	svc, store := newFileTrainer(dir)

	report, err := svc.Train(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 160, report.TrainRows)
	assert.Equal(t, 40, report.TestRows)
	assert.Greater(t, report.Metrics.R2, 0.0)
	assert.GreaterOrEqual(t, report.Metrics.MSE, 0.0)
	assert.False(t, math.IsNaN(report.Metrics.MSE) || math.IsInf(report.Metrics.MSE, 0))
	assert.FileExists(t, report.ModelPath)
	assert.FileExists(t, report.MetricsPath)

	predictor := NewPredictorService(store, testIdentity)
	require.NoError(t, predictor.Load(context.Background()))

	result, err := predictor.Predict(context.Background(), sampleFeatures())
	require.NoError(t, err)
	assert.False(t, math.IsNaN(result.WineQuality) || math.IsInf(result.WineQuality, 0))

	metrics, err := predictor.TrainingMetrics()
	require.NoError(t, err)
	assert.Equal(t, report.Metrics, metrics)
}

func TestTrainerService_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := writeSyntheticWine(t, dir, 120)

	first, _ := newFileTrainer(filepath.Join(dir, "a"))
	second, _ := newFileTrainer(filepath.Join(dir, "b"))

	r1, err := first.Train(context.Background(), path)
	require.NoError(t, err)
	r2, err := second.Train(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, r1.Metrics, r2.Metrics)
}

func TestTrainerService_DatasetNotFound(t *testing.T) {
	dir := t.TempDir()
	svc, _ := newFileTrainer(dir)

	_, err := svc.Train(context.Background(), filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	assert.NoDirExists(t, filepath.Join(dir, "artifacts"))
}

func TestTrainerService_FitFailureWritesNothing(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	fitter := new(testutil.MockModelFitter)
	store := new(testutil.MockArtifactStore)

	ds := &domain.Dataset{
		Columns: []string{"a"},
		X:       mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5}),
		Y:       []float64{1, 2, 3, 4, 5},
	}
	reader.On("Read", mock.Anything, "wine.csv").Return(ds, nil)
	fitter.On("Fit", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	svc := NewTrainerService(reader, fitter, store, 0.2, 42)
	_, err := svc.Train(context.Background(), "wine.csv")
	assert.ErrorIs(t, err, domain.ErrTrainingFailed)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTrainerService_TooFewRows(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	ds := &domain.Dataset{
		Columns: []string{"a"},
		X:       mat.NewDense(1, 1, []float64{1}),
		Y:       []float64{1},
	}
	reader.On("Read", mock.Anything, "wine.csv").Return(ds, nil)

	svc := NewTrainerService(reader, new(testutil.MockModelFitter), new(testutil.MockArtifactStore), 0.2, 42)
	_, err := svc.Train(context.Background(), "wine.csv")
	assert.ErrorIs(t, err, domain.ErrInvalidDataset)
}

func TestTrainerService_SaveFailure(t *testing.T) {
	reader := new(testutil.MockDatasetReader)
	fitter := new(testutil.MockModelFitter)
	store := new(testutil.MockArtifactStore)

	ds := &domain.Dataset{
		Columns: []string{"a"},
		X:       mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5}),
		Y:       []float64{1, 2, 3, 4, 5},
	}
	model := new(testutil.MockRegressor)
	model.On("Predict", mock.Anything).Return([]float64{2}, nil)
	reader.On("Read", mock.Anything, "wine.csv").Return(ds, nil)
	fitter.On("Fit", mock.Anything, mock.Anything, mock.Anything).Return(model, nil)
	store.On("Save", mock.Anything, mock.Anything).Return("", "", errors.New("disk full"))

	svc := NewTrainerService(reader, fitter, store, 0.2, 42)
	_, err := svc.Train(context.Background(), "wine.csv")
	assert.ErrorContains(t, err, "disk full")
}
