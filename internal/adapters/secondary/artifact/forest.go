package artifact

import (
	"fmt"

	"diabetes-predictor/internal/core/domain"
	ports "diabetes-predictor/internal/core/ports/output"
)

// Forest is an ensemble of decision trees that predicts the class with the
// highest mean leaf probability. A single decision tree is a forest of one.
// It is immutable after construction.
type Forest struct {
	classes []domain.Label
	trees   []compiledTree
}

type compiledTree struct {
	nodes []Node
	// proba holds normalized class probabilities for leaves, nil for splits.
	proba [][]float64
}

var _ ports.Classifier = (*Forest)(nil)

// NewForest builds a classifier from a validated artifact.
func NewForest(f *File) (*Forest, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	forest := &Forest{
		classes: make([]domain.Label, len(f.Classes)),
		trees:   make([]compiledTree, len(f.Trees)),
	}
	for i, c := range f.Classes {
		forest.classes[i] = domain.Label(c)
	}
	for i, t := range f.Trees {
		ct := compiledTree{
			nodes: t.Nodes,
			proba: make([][]float64, len(t.Nodes)),
		}
		for j, n := range t.Nodes {
			if !n.IsLeaf() {
				continue
			}
			var total float64
			for _, v := range n.Value {
				total += v
			}
			p := make([]float64, len(n.Value))
			for k, v := range n.Value {
				p[k] = v / total
			}
			ct.proba[j] = p
		}
		forest.trees[i] = ct
	}
	return forest, nil
}

// Predict returns the label for a single sample.
func (f *Forest) Predict(fv domain.FeatureVector) (domain.Label, error) {
	proba, err := f.PredictProba(fv)
	if err != nil {
		return 0, err
	}
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return f.classes[best], nil
}

// PredictProba returns the mean class probabilities across all trees, in the
// order of the artifact's class list.
func (f *Forest) PredictProba(fv domain.FeatureVector) ([]float64, error) {
	sum := make([]float64, len(f.classes))
	for i, t := range f.trees {
		leaf, err := t.leaf(fv)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		for k, p := range t.proba[leaf] {
			sum[k] += p
		}
	}
	for k := range sum {
		sum[k] /= float64(len(f.trees))
	}
	return sum, nil
}

func (f *Forest) Classes() []domain.Label {
	out := make([]domain.Label, len(f.classes))
	copy(out, f.classes)
	return out
}

func (t compiledTree) leaf(fv domain.FeatureVector) (int, error) {
	idx := 0
	for steps := 0; steps < len(t.nodes); steps++ {
		n := t.nodes[idx]
		if n.IsLeaf() {
			return idx, nil
		}
		if fv[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("no leaf reached after %d steps", len(t.nodes))
}
