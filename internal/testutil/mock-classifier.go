package testutil

import (
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"diabetes-predictor/internal/core/domain"
	ports "diabetes-predictor/internal/core/ports/output"
)

// MockClassifier is a mock of Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(fv domain.FeatureVector) (domain.Label, error) {
	args := m.Called(fv)
	return args.Get(0).(domain.Label), args.Error(1)
}

// StaticProvider is a ClassifierProvider with a fixed answer. A nil
// Model means no classifier was loaded.
type StaticProvider struct {
	Model   ports.Classifier
	LoadErr error
}

func (p StaticProvider) Classifier() (ports.Classifier, bool) {
	if p.Model == nil {
		return nil, false
	}
	return p.Model, true
}

// MockMetricsRecorder is a mock of MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) RecordOutcome(outcome ports.Outcome) {
	m.Called(outcome)
}

func (m *MockMetricsRecorder) RecordLabel(label int) {
	m.Called(label)
}

func (m *MockMetricsRecorder) RecordInference(d time.Duration) {
	m.Called(d)
}

func (p StaticProvider) Err() error {
	if p.Model == nil && p.LoadErr == nil {
		return errors.New("no classifier configured")
	}
	return p.LoadErr
}
