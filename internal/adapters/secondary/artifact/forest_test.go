package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diabetes-predictor/internal/core/domain"
)

func leaf(counts ...float64) Node {
	return Node{Left: leafChild, Right: leafChild, Value: counts}
}

func stump(feature int, threshold float64, left, right Node) Tree {
	return Tree{Nodes: []Node{
		{Feature: feature, Threshold: threshold, Left: 1, Right: 2},
		left,
		right,
	}}
}

func forestFile(trees ...Tree) *File {
	return &File{
		Type:      TypeRandomForest,
		NFeatures: domain.NumFeatures,
		Classes:   []int{0, 1},
		Trees:     trees,
	}
}

func TestForest_Predict(t *testing.T) {
	forest, err := NewForest(forestFile(
		stump(domain.Glucose, 127.5, leaf(9, 1), leaf(2, 8)),
	))
	require.NoError(t, err)

	label, err := forest.Predict(domain.FeatureVector{0, 100, 70, 20, 79, 25, 0.5, 33})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelNegative, label)

	label, err = forest.Predict(domain.FeatureVector{0, 127.6, 70, 20, 79, 25, 0.5, 33})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelPositive, label)
}

func TestForest_ThresholdGoesLeft(t *testing.T) {
	forest, err := NewForest(forestFile(
		stump(domain.Age, 30, leaf(1, 0), leaf(0, 1)),
	))
	require.NoError(t, err)

	label, err := forest.Predict(domain.FeatureVector{domain.Age: 30})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelNegative, label)
}

func TestForest_AveragesProbabilities(t *testing.T) {
	// One confident tree outweighs two weak ones.
	forest, err := NewForest(forestFile(
		Tree{Nodes: []Node{leaf(0, 100)}},
		Tree{Nodes: []Node{leaf(55, 45)}},
		Tree{Nodes: []Node{leaf(55, 45)}},
	))
	require.NoError(t, err)

	proba, err := forest.PredictProba(domain.FeatureVector{})
	require.NoError(t, err)
	assert.InDelta(t, 0.3667, proba[0], 1e-3)
	assert.InDelta(t, 0.6333, proba[1], 1e-3)

	label, err := forest.Predict(domain.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelPositive, label)
}

func TestForest_TieResolvesToFirstClass(t *testing.T) {
	forest, err := NewForest(forestFile(Tree{Nodes: []Node{leaf(5, 5)}}))
	require.NoError(t, err)

	label, err := forest.Predict(domain.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelNegative, label)
}

func TestForest_ClassOrderFromArtifact(t *testing.T) {
	f := forestFile(Tree{Nodes: []Node{leaf(9, 1)}})
	f.Classes = []int{1, 0}
	forest, err := NewForest(f)
	require.NoError(t, err)

	label, err := forest.Predict(domain.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelPositive, label)
	assert.Equal(t, []domain.Label{1, 0}, forest.Classes())
}

func TestNewForest_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		f    *File
		want error
	}{
		{"unknown type", &File{Type: "svm", NFeatures: 8, Classes: []int{0, 1}}, domain.ErrUnsupportedArtifact},
		{"no trees", forestFile(), domain.ErrIncompatibleSchema},
		{"wrong feature count", func() *File {
			f := forestFile(Tree{Nodes: []Node{leaf(1, 0)}})
			f.NFeatures = 7
			return f
		}(), domain.ErrIncompatibleSchema},
		{"non-binary class", func() *File {
			f := forestFile(Tree{Nodes: []Node{leaf(1, 0)}})
			f.Classes = []int{0, 2}
			return f
		}(), domain.ErrIncompatibleSchema},
		{"duplicate class", func() *File {
			f := forestFile(Tree{Nodes: []Node{leaf(1, 0)}})
			f.Classes = []int{1, 1}
			return f
		}(), domain.ErrIncompatibleSchema},
		{"leaf value size", forestFile(Tree{Nodes: []Node{leaf(1)}}), domain.ErrIncompatibleSchema},
		{"empty leaf", forestFile(Tree{Nodes: []Node{leaf(0, 0)}}), domain.ErrIncompatibleSchema},
		{"split feature out of range", forestFile(stump(8, 1, leaf(1, 0), leaf(0, 1))), domain.ErrIncompatibleSchema},
		{"child points backwards", forestFile(Tree{Nodes: []Node{
			{Feature: 0, Threshold: 1, Left: 0, Right: 1},
			leaf(1, 0),
		}}), domain.ErrIncompatibleSchema},
		{"two trees for decision tree", func() *File {
			f := forestFile(Tree{Nodes: []Node{leaf(1, 0)}}, Tree{Nodes: []Node{leaf(1, 0)}})
			f.Type = TypeDecisionTree
			return f
		}(), domain.ErrIncompatibleSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewForest(tt.f)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
