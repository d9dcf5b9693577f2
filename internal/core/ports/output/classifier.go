package ports

import (
	"diabetes-predictor/internal/core/domain"
)

// Classifier is a loaded, read-only binary predictor. Implementations must be
// safe for concurrent use.
type Classifier interface {
	Predict(fv domain.FeatureVector) (domain.Label, error)
}

// ClassifierProvider exposes the classifier loaded at startup, if any.
type ClassifierProvider interface {
	Classifier() (Classifier, bool)
	// Err is the reason loading failed, nil when a classifier is available.
	Err() error
}
