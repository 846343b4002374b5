package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilefinder/internal/client/googlecse"
	"profilefinder/internal/service"
)

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondError maps service-layer failures onto the API's error taxonomy:
// invalid-input 422, conflict 400, not-found 404, upstream errors with the
// provider's own status, everything else 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var apiErr *googlecse.APIError
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrDuplicateLink):
		Error(c, http.StatusBadRequest, service.ErrDuplicateLink.Error())
	case errors.Is(err, service.ErrProfileNotFound):
		Error(c, http.StatusNotFound, service.ErrProfileNotFound.Error())
	case errors.As(err, &apiErr):
		Error(c, apiErr.Status, "search provider error")
	default:
		if logger != nil {
			logger.Error("request failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error())
	}
}
