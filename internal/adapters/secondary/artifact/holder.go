package artifact

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	ports "diabetes-predictor/internal/core/ports/output"
)

// Holder keeps the classifier loaded at startup. It is filled once by Load
// and never changes afterwards, so it can be shared across requests.
type Holder struct {
	path       string
	classifier ports.Classifier
	err        error
}

var _ ports.ClassifierProvider = (*Holder)(nil)

// Load reads the artifact at path. It never fails: on any error the holder
// is returned empty and the error is logged and kept for health reporting.
func Load(path string) *Holder {
	h := &Holder{path: path}

	forest, err := loadForest(path)
	if err != nil {
		h.err = err
		log.WithError(err).WithField("path", path).Error("classifier model not loaded, predictions disabled")
		return h
	}

	h.classifier = forest
	log.WithFields(log.Fields{
		"path":  path,
		"trees": len(forest.trees),
	}).Info("classifier model loaded")
	return h
}

// NewHolder wraps an already built classifier.
func NewHolder(c ports.Classifier) *Holder {
	return &Holder{classifier: c}
}

func loadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	f, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	return NewForest(f)
}

func (h *Holder) Classifier() (ports.Classifier, bool) {
	if h == nil || h.classifier == nil {
		return nil, false
	}
	return h.classifier, true
}

func (h *Holder) Err() error {
	if h == nil {
		return nil
	}
	return h.err
}

func (h *Holder) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}
