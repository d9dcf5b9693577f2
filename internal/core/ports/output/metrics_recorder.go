package ports

import "time"

// Outcome labels a finished /predict request.
type Outcome string

const (
	OutcomePredicted        Outcome = "predicted"
	OutcomeInvalidInput     Outcome = "invalid_input"
	OutcomeModelUnavailable Outcome = "model_unavailable"
	OutcomeFailed           Outcome = "failed"
)

// MetricsRecorder defines the contract for prediction metrics
type MetricsRecorder interface {
	RecordOutcome(outcome Outcome)
	RecordLabel(label int)
	RecordInference(d time.Duration)
}
