package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"wine-quality-service/internal/core/domain"
	"wine-quality-service/internal/core/ports/output"
	"wine-quality-service/internal/ml/forest"
)

type TrainerService struct {
	reader   ports.DatasetReader
	fitter   ports.ModelFitter
	store    ports.ArtifactStore
	testSize float64
	seed     int64
}

// NewTrainerService wires one training run. seed fixes the train/test
// partition; the fitter carries its own seed.
func NewTrainerService(reader ports.DatasetReader, fitter ports.ModelFitter, store ports.ArtifactStore, testSize float64, seed int64) *TrainerService {
	return &TrainerService{
		reader:   reader,
		fitter:   fitter,
		store:    store,
		testSize: testSize,
		seed:     seed,
	}
}

// Train loads the dataset, fits on the training partition, evaluates on the
// held-out rows and persists model and metrics together.
func (s *TrainerService) Train(ctx context.Context, datasetPath string) (*domain.TrainingReport, error) {
	log.Infof("loading data from %s", datasetPath)
	ds, err := s.reader.Read(ctx, datasetPath)
	if err != nil {
		return nil, err
	}

	log.Info("preprocessing data")
	train, test, err := forest.TrainTestSplit(ds.Rows(), s.testSize, s.seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	xTrain, yTrain := forest.Subset(ds, train)
	xTest, yTest := forest.Subset(ds, test)

	log.WithFields(log.Fields{
		"train_rows": len(train),
		"test_rows":  len(test),
	}).Info("training regressor")
	model, err := s.fitter.Fit(ctx, xTrain, yTrain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTrainingFailed, err)
	}

	log.Info("evaluating model")
	metrics, err := forest.Evaluate(model, xTest, yTest)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluate: %v", domain.ErrTrainingFailed, err)
	}
	log.WithFields(log.Fields{
		"mse": metrics.MSE,
		"r2":  metrics.R2,
	}).Info("model performance")

	modelPath, metricsPath, err := s.store.Save(ctx, &domain.ModelArtifact{Model: model, Metrics: metrics})
	if err != nil {
		return nil, fmt.Errorf("save artifact: %w", err)
	}
	log.WithFields(log.Fields{
		"model":   modelPath,
		"metrics": metricsPath,
	}).Info("training complete")

	return &domain.TrainingReport{
		DatasetPath: datasetPath,
		ModelPath:   modelPath,
		MetricsPath: metricsPath,
		TrainRows:   len(train),
		TestRows:    len(test),
		Metrics:     metrics,
	}, nil
}
