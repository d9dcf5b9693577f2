package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diabetes-predictor/internal/adapters/primary/http/dto"
)

func (h *Handler) Predict(c *gin.Context) {
	form := dto.PredictFormFromContext(c)

	label, err := h.predictionSvc.Predict(c.Request.Context(), form.Values())
	if err != nil {
		h.redirectHome(c, err)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Title":      "Result",
		"Prediction": int(label),
	})
}
