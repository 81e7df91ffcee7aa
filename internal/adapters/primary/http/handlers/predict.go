package handlers

import (
	"fmt"
	"net/http"

	"wine-quality-service/internal/adapters/primary/http/dto"
	"wine-quality-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Root reports that the process is up. It does not reflect model load state.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{Message: h.banner})
}

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapDomainError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), req.ToFeatureVector())
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString("request_id")).Error("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(result))
}
