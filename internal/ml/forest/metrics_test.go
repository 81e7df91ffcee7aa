package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanSquaredError(t *testing.T) {
	assert.InDelta(t, 0.0, MeanSquaredError([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 1.0, MeanSquaredError([]float64{1, 2, 3}, []float64{2, 3, 4}), 1e-12)
	assert.InDelta(t, 2.0, MeanSquaredError([]float64{0, 0}, []float64{2, 0}), 1e-12)
}

func TestR2Score(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.0, R2Score(yTrue, yTrue), 1e-12)
	assert.InDelta(t, 0.0, R2Score(yTrue, []float64{2.5, 2.5, 2.5, 2.5}), 1e-12)
	assert.Less(t, R2Score(yTrue, []float64{4, 3, 2, 1}), 0.0)
}

func TestR2Score_ConstantTarget(t *testing.T) {
	assert.Equal(t, 1.0, R2Score([]float64{5, 5}, []float64{5, 5}))
	assert.Equal(t, 0.0, R2Score([]float64{5, 5}, []float64{4, 5}))
}
