// Package forest implements a bootstrap-aggregated ensemble of regression
// trees. Fitting is deterministic for a given seed and training table.
package forest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	log "github.com/sirupsen/logrus"

	"wine-quality-service/internal/core/domain"
)

var (
	ErrNotFitted      = errors.New("regressor not fitted")
	ErrColumnMismatch = errors.New("feature columns do not match the fitted model")
	ErrEmptyTraining  = errors.New("training set is empty")
)

// Config fixes the ensemble shape. MaxDepth 0 grows trees until leaves are
// pure or hold MinSamplesLeaf rows.
type Config struct {
	NEstimators    int
	Seed           int64
	MaxDepth       int
	MinSamplesLeaf int
}

// DefaultConfig is the single configuration the trainer fits.
func DefaultConfig() Config {
	return Config{
		NEstimators:    10,
		Seed:           42,
		MaxDepth:       0,
		MinSamplesLeaf: 1,
	}
}

// Regressor averages the predictions of its trees. Fields are exported for
// gob encoding; a fitted Regressor is never mutated.
type Regressor struct {
	Columns []string
	Trees   []Tree
	Config  Config
}

// Predict scores every row of frame. The frame's columns must equal the
// fitted columns by name and order.
func (r *Regressor) Predict(frame *domain.Frame) ([]float64, error) {
	if r == nil || len(r.Trees) == 0 {
		return nil, ErrNotFitted
	}
	if frame == nil || frame.Data == nil {
		return nil, errors.New("empty frame")
	}
	if err := r.checkColumns(frame); err != nil {
		return nil, err
	}

	rows, _ := frame.Data.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := frame.Data.RawRowView(i)
		var sum float64
		for t := range r.Trees {
			v, err := r.Trees[t].predict(row)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", t, err)
			}
			sum += v
		}
		out[i] = sum / float64(len(r.Trees))
	}
	return out, nil
}

// FeatureColumns returns the column names the regressor was fit on.
func (r *Regressor) FeatureColumns() []string {
	return slices.Clone(r.Columns)
}

func (r *Regressor) checkColumns(frame *domain.Frame) error {
	_, cols := frame.Data.Dims()
	if cols != len(r.Columns) || len(frame.Columns) != len(r.Columns) {
		return fmt.Errorf("%w: expected %d features, got %d", ErrColumnMismatch, len(r.Columns), cols)
	}
	for i, name := range r.Columns {
		if frame.Columns[i] != name {
			return fmt.Errorf("%w: column %d is %q, expected %q", ErrColumnMismatch, i, frame.Columns[i], name)
		}
	}
	return nil
}

// Fitter builds Regressors with a fixed Config.
type Fitter struct {
	cfg Config
}

func NewFitter(cfg Config) *Fitter {
	if cfg.NEstimators <= 0 {
		cfg.NEstimators = DefaultConfig().NEstimators
	}
	if cfg.MinSamplesLeaf <= 0 {
		cfg.MinSamplesLeaf = 1
	}
	return &Fitter{cfg: cfg}
}

// Fit grows NEstimators trees, each on a bootstrap sample drawn from a
// per-tree seed derived from Config.Seed.
func (f *Fitter) Fit(ctx context.Context, x *domain.Frame, y []float64) (domain.Regressor, error) {
	if x == nil || x.Data == nil || len(y) == 0 {
		return nil, ErrEmptyTraining
	}
	n, cols := x.Data.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("features and labels size mismatch: %d rows, %d labels", n, len(y))
	}
	if cols != len(x.Columns) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrColumnMismatch, len(x.Columns), cols)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = x.Data.RawRowView(i)
	}

	seeds := rand.New(rand.NewSource(f.cfg.Seed))
	trees := make([]Tree, 0, f.cfg.NEstimators)
	for t := 0; t < f.cfg.NEstimators; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(seeds.Int63()))
		tree := growTree(rows, y, bootstrap(rng, n), f.cfg.MaxDepth, f.cfg.MinSamplesLeaf)
		trees = append(trees, tree)

		log.WithFields(log.Fields{
			"tree":  t,
			"nodes": len(tree.Nodes),
		}).Debug("tree fitted")
	}

	columns := make([]string, len(x.Columns))
	copy(columns, x.Columns)
	return &Regressor{Columns: columns, Trees: trees, Config: f.cfg}, nil
}
