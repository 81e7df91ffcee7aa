package artifact

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"wine-quality-service/internal/core/domain"
	"wine-quality-service/internal/ml/forest"
)

func init() {
	gob.Register(&forest.Regressor{})
}

type envelope struct {
	Model domain.Regressor
}

// FileStore keeps the model and its metrics as two sibling files.
type FileStore struct {
	modelPath   string
	metricsPath string
}

func NewFileStore(modelPath, metricsPath string) *FileStore {
	return &FileStore{modelPath: modelPath, metricsPath: metricsPath}
}

// Save writes both files to temporaries first and renames them into place
// only after both encoded cleanly.
func (s *FileStore) Save(ctx context.Context, a *domain.ModelArtifact) (string, string, error) {
	if a == nil || a.Model == nil {
		return "", "", errors.New("artifact has no model")
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	for _, dir := range []string{filepath.Dir(s.modelPath), filepath.Dir(s.metricsPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("create artifacts dir: %w", err)
		}
	}

	modelTmp, err := writeTemp(s.modelPath, func(f *os.File) error {
		return gob.NewEncoder(f).Encode(envelope{Model: a.Model})
	})
	if err != nil {
		return "", "", fmt.Errorf("encode model: %w", err)
	}
	defer os.Remove(modelTmp)

	metricsTmp, err := writeTemp(s.metricsPath, func(f *os.File) error {
		return json.NewEncoder(f).Encode(a.Metrics)
	})
	if err != nil {
		return "", "", fmt.Errorf("encode metrics: %w", err)
	}
	defer os.Remove(metricsTmp)

	if err := os.Rename(modelTmp, s.modelPath); err != nil {
		return "", "", fmt.Errorf("move model into place: %w", err)
	}
	if err := os.Rename(metricsTmp, s.metricsPath); err != nil {
		_ = os.Remove(s.modelPath)
		return "", "", fmt.Errorf("move metrics into place: %w", err)
	}

	log.WithFields(log.Fields{
		"model":   s.modelPath,
		"metrics": s.metricsPath,
	}).Debug("artifact saved")

	return s.modelPath, s.metricsPath, nil
}

// Load decodes the model file. A missing or unreadable metrics file is
// logged and leaves the metrics zeroed; the model alone is enough to serve.
func (s *FileStore) Load(ctx context.Context) (*domain.ModelArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
	}
	defer f.Close()

	var env envelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrModelLoad, s.modelPath, err)
	}
	if env.Model == nil {
		return nil, fmt.Errorf("%w: %s holds no model", domain.ErrModelLoad, s.modelPath)
	}

	a := &domain.ModelArtifact{Model: env.Model}
	payload, err := os.ReadFile(s.metricsPath)
	if err == nil {
		err = json.Unmarshal(payload, &a.Metrics)
	}
	if err != nil {
		log.WithError(err).WithField("path", s.metricsPath).Warn("training metrics unavailable")
	}

	return a, nil
}

func writeTemp(target string, write func(*os.File) error) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return "", err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
