package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"diabetes-predictor/internal/core/domain"
)

const (
	TypeRandomForest = "random_forest"
	TypeDecisionTree = "decision_tree"
)

// leafChild marks a missing child, following the scikit-learn tree layout.
const leafChild = -1

// File is the on-disk classifier artifact.
type File struct {
	Type         string   `json:"type" yaml:"type"`
	NFeatures    int      `json:"n_features" yaml:"n_features"`
	FeatureNames []string `json:"feature_names,omitempty" yaml:"feature_names,omitempty"`
	Classes      []int    `json:"classes" yaml:"classes"`
	Trees        []Tree   `json:"trees" yaml:"trees"`
}

type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Node is either a split (Left/Right set) or a leaf (both -1) whose Value
// holds per-class sample counts.
type Node struct {
	Feature   int       `json:"feature" yaml:"feature"`
	Threshold float64   `json:"threshold" yaml:"threshold"`
	Left      int       `json:"left" yaml:"left"`
	Right     int       `json:"right" yaml:"right"`
	Value     []float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

func (n Node) IsLeaf() bool {
	return n.Left == leafChild && n.Right == leafChild
}

// Decode parses an artifact, choosing the format from the file extension.
func Decode(path string, data []byte) (*File, error) {
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json artifact: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml artifact: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: extension %q", domain.ErrUnsupportedArtifact, filepath.Ext(path))
	}
	return &f, nil
}

// Validate checks the artifact against the fixed input and output schema.
func (f *File) Validate() error {
	switch f.Type {
	case TypeRandomForest:
		if len(f.Trees) == 0 {
			return fmt.Errorf("%w: forest has no trees", domain.ErrIncompatibleSchema)
		}
	case TypeDecisionTree:
		if len(f.Trees) != 1 {
			return fmt.Errorf("%w: decision tree needs exactly one tree, got %d", domain.ErrIncompatibleSchema, len(f.Trees))
		}
	default:
		return fmt.Errorf("%w: type %q", domain.ErrUnsupportedArtifact, f.Type)
	}

	if f.NFeatures != domain.NumFeatures {
		return fmt.Errorf("%w: expects %d features, got %d", domain.ErrIncompatibleSchema, domain.NumFeatures, f.NFeatures)
	}
	if len(f.FeatureNames) > 0 {
		if len(f.FeatureNames) != domain.NumFeatures {
			return fmt.Errorf("%w: %d feature names", domain.ErrIncompatibleSchema, len(f.FeatureNames))
		}
		for i, name := range f.FeatureNames {
			if !strings.EqualFold(name, domain.FeatureNames[i]) {
				return fmt.Errorf("%w: feature %d is %q, want %q", domain.ErrIncompatibleSchema, i, name, domain.FeatureNames[i])
			}
		}
	}

	if len(f.Classes) == 0 {
		return fmt.Errorf("%w: no classes", domain.ErrIncompatibleSchema)
	}
	seen := make(map[int]bool, len(f.Classes))
	for _, c := range f.Classes {
		if !domain.Label(c).Valid() {
			return fmt.Errorf("%w: class %d is not binary", domain.ErrIncompatibleSchema, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate class %d", domain.ErrIncompatibleSchema, c)
		}
		seen[c] = true
	}

	for i, t := range f.Trees {
		if err := t.validate(len(f.Classes)); err != nil {
			return fmt.Errorf("%w: tree %d: %v", domain.ErrIncompatibleSchema, i, err)
		}
	}
	return nil
}

func (t Tree) validate(nClasses int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, n := range t.Nodes {
		if n.IsLeaf() {
			if len(n.Value) != nClasses {
				return fmt.Errorf("leaf %d has %d values for %d classes", i, len(n.Value), nClasses)
			}
			var total float64
			for _, v := range n.Value {
				if v < 0 {
					return fmt.Errorf("leaf %d has a negative count", i)
				}
				total += v
			}
			if total == 0 {
				return fmt.Errorf("leaf %d is empty", i)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= domain.NumFeatures {
			return fmt.Errorf("node %d splits on feature %d", i, n.Feature)
		}
		// Children always come after their parent, which rules out cycles.
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has children %d/%d out of range", i, n.Left, n.Right)
		}
	}
	return nil
}
