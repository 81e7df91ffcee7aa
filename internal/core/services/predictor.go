package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"wine-quality-service/internal/core/domain"
	"wine-quality-service/internal/core/ports/output"
)

// Identity is echoed unchanged in every prediction response.
type Identity struct {
	Name   string
	RollNo string
}

// PredictorService owns the loaded model for the process lifetime. Load runs
// at most once; the artifact is written before the READY state is published
// and never reassigned, so Predict reads it without locking.
type PredictorService struct {
	store    ports.ArtifactStore
	identity Identity

	once     sync.Once
	loadErr  error
	state    atomic.Value
	artifact *domain.ModelArtifact
}

func NewPredictorService(store ports.ArtifactStore, identity Identity) *PredictorService {
	s := &PredictorService{store: store, identity: identity}
	s.state.Store(domain.ModelStateUninitialized)
	return s
}

func (s *PredictorService) State() domain.ModelState {
	return s.state.Load().(domain.ModelState)
}

// Load moves UNINITIALIZED → LOADING → READY, or to FAILED on error. Later
// calls return the first outcome.
func (s *PredictorService) Load(ctx context.Context) error {
	s.once.Do(func() {
		s.state.Store(domain.ModelStateLoading)

		artifact, err := s.store.Load(ctx)
		if err != nil {
			s.loadErr = fmt.Errorf("load artifact: %w", err)
			s.state.Store(domain.ModelStateFailed)
			log.WithError(err).Error("model load failed")
			return
		}

		if cols, ok := artifact.Model.(interface{ FeatureColumns() []string }); ok {
			if !slices.Equal(cols.FeatureColumns(), domain.FeatureColumns) {
				log.WithField("columns", cols.FeatureColumns()).Warn("model was fit on different feature columns")
			}
		}

		s.artifact = artifact
		s.state.Store(domain.ModelStateReady)
		log.WithFields(log.Fields{
			"mse": artifact.Metrics.MSE,
			"r2":  artifact.Metrics.R2,
		}).Info("model loaded")
	})
	return s.loadErr
}

// TrainingMetrics returns the metrics persisted with the loaded model.
func (s *PredictorService) TrainingMetrics() (domain.TrainingMetrics, error) {
	if s.State() != domain.ModelStateReady {
		return domain.TrainingMetrics{}, domain.ErrModelUnavailable
	}
	return s.artifact.Metrics, nil
}

func (s *PredictorService) Predict(ctx context.Context, features domain.FeatureVector) (*domain.PredictionResult, error) {
	if s.State() != domain.ModelStateReady {
		return nil, domain.ErrModelUnavailable
	}

	quality, err := s.score(features.Frame())
	if err != nil {
		return nil, err
	}

	return &domain.PredictionResult{
		Name:        s.identity.Name,
		RollNo:      s.identity.RollNo,
		WineQuality: quality,
	}, nil
}

func (s *PredictorService) score(frame *domain.Frame) (quality float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrPredictionFailed, r)
		}
	}()

	preds, err := s.artifact.Model.Predict(frame)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrPredictionFailed, err)
	}
	if len(preds) != 1 {
		return 0, fmt.Errorf("%w: expected 1 prediction, got %d", domain.ErrPredictionFailed, len(preds))
	}
	if math.IsNaN(preds[0]) || math.IsInf(preds[0], 0) {
		return 0, fmt.Errorf("%w: non-finite prediction %v", domain.ErrPredictionFailed, preds[0])
	}
	return preds[0], nil
}
