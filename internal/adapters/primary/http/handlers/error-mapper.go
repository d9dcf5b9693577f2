package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"diabetes-predictor/internal/adapters/primary/http/flash"
	"diabetes-predictor/internal/adapters/primary/http/middleware"
	"diabetes-predictor/internal/core/domain"
)

const (
	msgInvalidNumber    = "Please enter valid numerical values for all fields."
	msgNegativeValue    = "Please enter valid positive values for all fields."
	msgAgeOutOfRange    = "Please enter a valid age between 1 and 120 years."
	msgBMIOutOfRange    = "Please enter a valid BMI between 10 and 70."
	msgModelUnavailable = "Model not available. Please try again later."
	msgPredictionFailed = "An error occurred during prediction. Please try again."
)

func flashMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidNumber):
		return msgInvalidNumber
	case errors.Is(err, domain.ErrNegativeValue):
		return msgNegativeValue
	case errors.Is(err, domain.ErrAgeOutOfRange):
		return msgAgeOutOfRange
	case errors.Is(err, domain.ErrBMIOutOfRange):
		return msgBMIOutOfRange
	case errors.Is(err, domain.ErrModelUnavailable):
		return msgModelUnavailable
	default:
		return msgPredictionFailed
	}
}

// redirectHome flashes the user-facing message for err and redirects to the form.
func (h *Handler) redirectHome(c *gin.Context, err error) {
	msg := flashMessage(err)
	if msg == msgPredictionFailed {
		log.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error("prediction request failed")
	}

	if ferr := h.flash.Add(c, flash.CategoryError, msg); ferr != nil {
		log.WithError(ferr).Error("set flash message")
	}
	c.Redirect(http.StatusFound, "/")
}
