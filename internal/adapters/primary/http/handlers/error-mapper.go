package handlers

import (
	"errors"
	"net/http"

	"wine-quality-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": domain.ErrInvalidInput.Error(), "detail": err.Error()})

	case errors.Is(err, domain.ErrModelUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrPredictionFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrPredictionFailed.Error(), "detail": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
