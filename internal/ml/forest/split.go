package forest

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"wine-quality-service/internal/core/domain"
)

// TrainTestSplit shuffles 0..n-1 with seed and holds out ceil(testSize*n)
// indices for evaluation. The same inputs always yield the same partition.
func TrainTestSplit(n int, testSize float64, seed int64) (train, test []int, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be in (0, 1), got %v", testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	if nTest < 1 || n-nTest < 1 {
		return nil, nil, fmt.Errorf("cannot split %d rows with test size %v", n, testSize)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}

// Subset copies the given dataset rows into a new frame and label slice.
func Subset(ds *domain.Dataset, idx []int) (*domain.Frame, []float64) {
	_, cols := ds.X.Dims()
	x := mat.NewDense(len(idx), cols, nil)
	y := make([]float64, len(idx))
	for i, src := range idx {
		x.SetRow(i, ds.X.RawRowView(src))
		y[i] = ds.Y[src]
	}

	columns := make([]string, len(ds.Columns))
	copy(columns, ds.Columns)
	return &domain.Frame{Columns: columns, Data: x}, y
}
