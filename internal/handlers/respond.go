package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service-layer failures into HTTP responses.
// notFoundMsg and failMsg keep the entity name in the message without each
// handler repeating the full errors.Is ladder.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnavailable):
		logger.Error("Store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
