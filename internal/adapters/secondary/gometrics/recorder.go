package gometrics

import (
	"fmt"
	"io"
	"time"

	metrics "github.com/rcrowley/go-metrics"

	ports "diabetes-predictor/internal/core/ports/output"
)

const prefix = "predict"

type recorder struct {
	registry  metrics.Registry
	inference metrics.Timer
}

// Recorder is a MetricsRecorder backed by a go-metrics registry.
type Recorder interface {
	ports.MetricsRecorder
	WriteJSON(w io.Writer)
}

// NewRecorder creates a recorder on the given registry, or on a fresh one
// when registry is nil.
func NewRecorder(registry metrics.Registry) Recorder {
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &recorder{
		registry:  registry,
		inference: metrics.GetOrRegisterTimer(prefix+".inference", registry),
	}
}

func (r *recorder) RecordOutcome(outcome ports.Outcome) {
	metrics.GetOrRegisterCounter(fmt.Sprintf("%s.outcome.%s", prefix, outcome), r.registry).Inc(1)
}

func (r *recorder) RecordLabel(label int) {
	metrics.GetOrRegisterCounter(fmt.Sprintf("%s.label.%d", prefix, label), r.registry).Inc(1)
}

func (r *recorder) RecordInference(d time.Duration) {
	r.inference.Update(d)
}

// WriteJSON writes a point-in-time snapshot of all registered metrics.
func (r *recorder) WriteJSON(w io.Writer) {
	metrics.WriteJSONOnce(r.registry, w)
}
