package domain

import "errors"

// ============================================================================
// Input Errors
// ============================================================================

var (
	ErrInvalidNumber = errors.New("field is not a valid number")
	ErrNegativeValue = errors.New("field value is negative")
	ErrAgeOutOfRange = errors.New("age must be between 1 and 120")
	ErrBMIOutOfRange = errors.New("BMI must be between 10 and 70")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrModelUnavailable = errors.New("classifier model not available")
	ErrPredictionFailed = errors.New("prediction failed")
)

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrUnsupportedArtifact = errors.New("unsupported classifier artifact")
	ErrIncompatibleSchema  = errors.New("classifier artifact schema is incompatible")
	ErrFeatureCount        = errors.New("feature vector has wrong length")
)
