package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumFeatures is the width of the classifier input.
const NumFeatures = 8

// Positions within a FeatureVector.
const (
	Pregnancies = iota
	Glucose
	BloodPressure
	SkinThickness
	Insulin
	BMI
	DiabetesPedigree
	Age
)

// FeatureNames holds the form field names in vector order. The order must
// match the order the classifier was trained on.
var FeatureNames = [NumFeatures]string{
	"pregnancies",
	"glucose",
	"bloodpressure",
	"skinthickness",
	"insulin",
	"bmi",
	"dpf",
	"age",
}

const (
	MinAge = 1
	MaxAge = 120
	MinBMI = 10
	MaxBMI = 70
)

// FeatureVector is a single classifier input in FeatureNames order.
type FeatureVector [NumFeatures]float64

// Label is the binary classifier output.
type Label int

const (
	LabelNegative Label = 0
	LabelPositive Label = 1
)

func (l Label) Valid() bool {
	return l == LabelNegative || l == LabelPositive
}

// ParseFeatureVector parses raw field values given in FeatureNames order.
// Values that are not finite decimal numbers yield ErrInvalidNumber.
func ParseFeatureVector(raw [NumFeatures]string) (FeatureVector, error) {
	var fv FeatureVector
	for i, s := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return FeatureVector{}, fmt.Errorf("%s=%q: %w", FeatureNames[i], s, ErrInvalidNumber)
		}
		fv[i] = f
	}
	return fv, nil
}

// Validate applies the range checks in order: negativity, age, BMI. The first
// failing check decides the error.
func (fv FeatureVector) Validate() error {
	for _, v := range fv {
		if v < 0 {
			return ErrNegativeValue
		}
	}
	if age := fv[Age]; age < MinAge || age > MaxAge {
		return ErrAgeOutOfRange
	}
	if bmi := fv[BMI]; bmi < MinBMI || bmi > MaxBMI {
		return ErrBMIOutOfRange
	}
	return nil
}

// Map returns the vector keyed by feature name, for logging.
func (fv FeatureVector) Map() map[string]float64 {
	m := make(map[string]float64, NumFeatures)
	for i, name := range FeatureNames {
		m[name] = fv[i]
	}
	return m
}
