package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"diabetes-predictor/internal/core/domain"
	ports "diabetes-predictor/internal/core/ports/output"
)

// PredictionService validates form input and runs it through the classifier
// loaded at startup.
type PredictionService struct {
	models  ports.ClassifierProvider
	metrics ports.MetricsRecorder
}

// NewPredictionService creates a new prediction service. A nil metrics
// recorder disables metrics.
func NewPredictionService(models ports.ClassifierProvider, metrics ports.MetricsRecorder) *PredictionService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &PredictionService{models: models, metrics: metrics}
}

// ModelAvailable reports whether a classifier was loaded.
func (s *PredictionService) ModelAvailable() bool {
	_, ok := s.models.Classifier()
	return ok
}

// ModelStatus returns nil when predictions are possible, otherwise why not.
func (s *PredictionService) ModelStatus() error {
	if s.ModelAvailable() {
		return nil
	}
	if err := s.models.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	return domain.ErrModelUnavailable
}

// Predict parses the raw field values (in domain.FeatureNames order),
// validates them and returns the classifier's label.
func (s *PredictionService) Predict(ctx context.Context, raw [domain.NumFeatures]string) (domain.Label, error) {
	fv, err := domain.ParseFeatureVector(raw)
	if err != nil {
		s.metrics.RecordOutcome(ports.OutcomeInvalidInput)
		return 0, err
	}
	if err := fv.Validate(); err != nil {
		s.metrics.RecordOutcome(ports.OutcomeInvalidInput)
		return 0, err
	}

	classifier, ok := s.models.Classifier()
	if !ok {
		s.metrics.RecordOutcome(ports.OutcomeModelUnavailable)
		return 0, domain.ErrModelUnavailable
	}

	start := time.Now()
	label, err := infer(classifier, fv)
	s.metrics.RecordInference(time.Since(start))
	if err != nil {
		s.metrics.RecordOutcome(ports.OutcomeFailed)
		log.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"features": fv.Map(),
		}).Error("prediction failed")
		return 0, fmt.Errorf("%w: %v", domain.ErrPredictionFailed, err)
	}

	s.metrics.RecordOutcome(ports.OutcomePredicted)
	s.metrics.RecordLabel(int(label))
	log.WithContext(ctx).WithFields(log.Fields{
		"label": int(label),
	}).Debug("prediction completed")
	return label, nil
}

// infer calls the classifier, turning panics and non-binary labels into errors.
func infer(c ports.Classifier, fv domain.FeatureVector) (label domain.Label, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()

	label, err = c.Predict(fv)
	if err != nil {
		return 0, err
	}
	if !label.Valid() {
		return 0, fmt.Errorf("classifier returned non-binary label %d", label)
	}
	return label, nil
}

type noopRecorder struct{}

func (noopRecorder) RecordOutcome(ports.Outcome)   {}
func (noopRecorder) RecordLabel(int)               {}
func (noopRecorder) RecordInference(time.Duration) {}
