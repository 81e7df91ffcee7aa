package forest

import (
	"errors"
	"math/rand"
	"sort"
)

// Node is one entry of a flattened regression tree. Children are absolute
// indices into Tree.Nodes.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
	Leaf      bool
}

// Tree is a CART regression tree grown on variance reduction.
type Tree struct {
	Nodes []Node
}

type treeBuilder struct {
	rows           [][]float64
	y              []float64
	maxDepth       int
	minSamplesLeaf int
	nodes          []Node
}

func growTree(rows [][]float64, y []float64, samples []int, maxDepth, minSamplesLeaf int) Tree {
	b := &treeBuilder{
		rows:           rows,
		y:              y,
		maxDepth:       maxDepth,
		minSamplesLeaf: minSamplesLeaf,
	}
	b.build(samples, 0)
	return Tree{Nodes: b.nodes}
}

func (b *treeBuilder) build(samples []int, depth int) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: -1, Left: -1, Right: -1, Leaf: true, Value: b.mean(samples)})

	if len(samples) < 2*b.minSamplesLeaf || (b.maxDepth > 0 && depth >= b.maxDepth) || b.constant(samples) {
		return idx
	}

	feature, threshold, ok := b.bestSplit(samples)
	if !ok {
		return idx
	}

	left := make([]int, 0, len(samples))
	right := make([]int, 0, len(samples))
	for _, s := range samples {
		if b.rows[s][feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return idx
	}

	l := b.build(left, depth+1)
	r := b.build(right, depth+1)
	b.nodes[idx] = Node{
		Feature:   feature,
		Threshold: threshold,
		Left:      l,
		Right:     r,
		Value:     b.nodes[idx].Value,
	}
	return idx
}

// bestSplit maximizes sumL²/nL + sumR²/nR, which minimizes the summed
// squared error of the two children.
func (b *treeBuilder) bestSplit(samples []int) (int, float64, bool) {
	n := len(samples)
	var total float64
	for _, s := range samples {
		total += b.y[s]
	}
	parentScore := total * total / float64(n)

	bestFeature := -1
	bestThreshold := 0.0
	bestScore := parentScore

	sorted := make([]int, n)
	featureCount := len(b.rows[samples[0]])
	for f := 0; f < featureCount; f++ {
		copy(sorted, samples)
		sort.SliceStable(sorted, func(i, j int) bool {
			return b.rows[sorted[i]][f] < b.rows[sorted[j]][f]
		})

		var leftSum float64
		for k := 1; k < n; k++ {
			leftSum += b.y[sorted[k-1]]
			lo := b.rows[sorted[k-1]][f]
			hi := b.rows[sorted[k]][f]
			if lo == hi {
				continue
			}
			if k < b.minSamplesLeaf || n-k < b.minSamplesLeaf {
				continue
			}
			rightSum := total - leftSum
			score := leftSum*leftSum/float64(k) + rightSum*rightSum/float64(n-k)
			if score > bestScore+1e-12 {
				bestScore = score
				bestFeature = f
				bestThreshold = lo + (hi-lo)/2
				if bestThreshold >= hi {
					bestThreshold = lo
				}
			}
		}
	}
	if bestFeature == -1 {
		return -1, 0, false
	}
	return bestFeature, bestThreshold, true
}

func (b *treeBuilder) mean(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += b.y[s]
	}
	return sum / float64(len(samples))
}

func (b *treeBuilder) constant(samples []int) bool {
	first := b.y[samples[0]]
	for _, s := range samples[1:] {
		if b.y[s] != first {
			return false
		}
	}
	return true
}

func (t *Tree) predict(row []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.New("tree not fitted")
	}
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Leaf {
			return node.Value, nil
		}
		if node.Feature < 0 || node.Feature >= len(row) {
			return 0, errors.New("feature index out of range")
		}
		if row[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx <= 0 || idx >= len(t.Nodes) {
			return 0, errors.New("invalid tree state")
		}
	}
}

func bootstrap(rng *rand.Rand, n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = rng.Intn(n)
	}
	return samples
}
