package forest

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"wine-quality-service/internal/core/domain"
)

// MeanSquaredError is the average squared residual.
func MeanSquaredError(yTrue, yPred []float64) float64 {
	var sum float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(len(yTrue))
}

// R2Score is the coefficient of determination. A constant target scores 1
// when predicted exactly and 0 otherwise.
func R2Score(yTrue, yPred []float64) float64 {
	if len(yTrue) < 2 || stat.Variance(yTrue, nil) == 0 {
		if MeanSquaredError(yTrue, yPred) == 0 {
			return 1
		}
		return 0
	}
	return stat.RSquaredFrom(yPred, yTrue, nil)
}

// Evaluate scores model on x and compares against y.
func Evaluate(model domain.Regressor, x *domain.Frame, y []float64) (domain.TrainingMetrics, error) {
	pred, err := model.Predict(x)
	if err != nil {
		return domain.TrainingMetrics{}, err
	}
	if len(pred) != len(y) || len(y) == 0 {
		return domain.TrainingMetrics{}, fmt.Errorf("got %d predictions for %d labels", len(pred), len(y))
	}
	return domain.TrainingMetrics{
		MSE: MeanSquaredError(y, pred),
		R2:  R2Score(y, pred),
	}, nil
}
