package handlers

import (
	"wine-quality-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictor *services.PredictorService
	banner    string
}

func New(predictor *services.PredictorService, banner string) *Handler {
	return &Handler{predictor: predictor, banner: banner}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Root)
	r.POST("/predict", h.Predict)
}
