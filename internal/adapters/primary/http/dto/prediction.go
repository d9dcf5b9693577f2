package dto

import (
	"github.com/gin-gonic/gin"

	"diabetes-predictor/internal/core/domain"
)

// missingField is used for any form field absent from the submission.
const missingField = "0"

// PredictForm is the raw /predict form submission.
type PredictForm struct {
	Pregnancies   string `form:"pregnancies"`
	Glucose       string `form:"glucose"`
	BloodPressure string `form:"bloodpressure"`
	SkinThickness string `form:"skinthickness"`
	Insulin       string `form:"insulin"`
	BMI           string `form:"bmi"`
	DPF           string `form:"dpf"`
	Age           string `form:"age"`
}

// PredictFormFromContext reads the form fields. Fields present but empty
// are kept empty so they fail number parsing.
func PredictFormFromContext(c *gin.Context) PredictForm {
	return PredictForm{
		Pregnancies:   c.DefaultPostForm("pregnancies", missingField),
		Glucose:       c.DefaultPostForm("glucose", missingField),
		BloodPressure: c.DefaultPostForm("bloodpressure", missingField),
		SkinThickness: c.DefaultPostForm("skinthickness", missingField),
		Insulin:       c.DefaultPostForm("insulin", missingField),
		BMI:           c.DefaultPostForm("bmi", missingField),
		DPF:           c.DefaultPostForm("dpf", missingField),
		Age:           c.DefaultPostForm("age", missingField),
	}
}

// Values returns the fields in classifier input order.
func (f PredictForm) Values() [domain.NumFeatures]string {
	return [domain.NumFeatures]string{
		domain.Pregnancies:      f.Pregnancies,
		domain.Glucose:          f.Glucose,
		domain.BloodPressure:    f.BloodPressure,
		domain.SkinThickness:    f.SkinThickness,
		domain.Insulin:          f.Insulin,
		domain.BMI:              f.BMI,
		domain.DiabetesPedigree: f.DPF,
		domain.Age:              f.Age,
	}
}
