package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() [NumFeatures]string {
	return [NumFeatures]string{"2", "120", "70", "20", "79", "25.5", "0.5", "33"}
}

func TestParseFeatureVector_Order(t *testing.T) {
	fv, err := ParseFeatureVector(validRaw())
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{2, 120, 70, 20, 79, 25.5, 0.5, 33}, fv)
	assert.Equal(t, 25.5, fv[BMI])
	assert.Equal(t, 33.0, fv[Age])
}

func TestParseFeatureVector_TrimsSpace(t *testing.T) {
	raw := validRaw()
	raw[Glucose] = " 120 "
	fv, err := ParseFeatureVector(raw)
	require.NoError(t, err)
	assert.Equal(t, 120.0, fv[Glucose])
}

func TestParseFeatureVector_Invalid(t *testing.T) {
	for _, bad := range []string{"abc", "", "1,5", "NaN", "inf", "-Inf", "12abc"} {
		for i := range FeatureNames {
			raw := validRaw()
			raw[i] = bad
			_, err := ParseFeatureVector(raw)
			assert.ErrorIs(t, err, ErrInvalidNumber, "field %s value %q", FeatureNames[i], bad)
		}
	}
}

func TestValidate(t *testing.T) {
	base := FeatureVector{2, 120, 70, 20, 79, 25.5, 0.5, 33}

	tests := []struct {
		name   string
		modify func(fv *FeatureVector)
		want   error
	}{
		{"valid", func(fv *FeatureVector) {}, nil},
		{"zero pregnancies", func(fv *FeatureVector) { fv[Pregnancies] = 0 }, nil},
		{"negative insulin", func(fv *FeatureVector) { fv[Insulin] = -0.1 }, ErrNegativeValue},
		{"negative age before age range", func(fv *FeatureVector) { fv[Age] = -1 }, ErrNegativeValue},
		{"age 0", func(fv *FeatureVector) { fv[Age] = 0 }, ErrAgeOutOfRange},
		{"age 121", func(fv *FeatureVector) { fv[Age] = 121 }, ErrAgeOutOfRange},
		{"age 1", func(fv *FeatureVector) { fv[Age] = 1 }, nil},
		{"age 120", func(fv *FeatureVector) { fv[Age] = 120 }, nil},
		{"bmi 9", func(fv *FeatureVector) { fv[BMI] = 9 }, ErrBMIOutOfRange},
		{"bmi 71", func(fv *FeatureVector) { fv[BMI] = 71 }, ErrBMIOutOfRange},
		{"bmi 10", func(fv *FeatureVector) { fv[BMI] = 10 }, nil},
		{"bmi 70", func(fv *FeatureVector) { fv[BMI] = 70 }, nil},
		{"age checked before bmi", func(fv *FeatureVector) { fv[Age] = 0; fv[BMI] = 0 }, ErrAgeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := base
			tt.modify(&fv)
			err := fv.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLabelValid(t *testing.T) {
	assert.True(t, LabelNegative.Valid())
	assert.True(t, LabelPositive.Valid())
	assert.False(t, Label(2).Valid())
	assert.False(t, Label(-1).Valid())
}
