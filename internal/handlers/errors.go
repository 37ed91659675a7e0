package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/services"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors to HTTP responses. Sentinel errors
// from the ledger surface as 400s with their message; infrastructure
// failures collapse to an opaque 500.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyAllocation),
		errors.Is(err, services.ErrTargetNotFound),
		errors.Is(err, services.ErrCampaignInactive),
		errors.Is(err, services.ErrMissingCardDetails),
		errors.Is(err, services.ErrRateUnavailable),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidOperation),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": rootMessage(err)})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": rootMessage(err)})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": rootMessage(err)})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// rootMessage prefers the AppError message over the raw error chain so
// internal wrapping detail stays out of responses.
func rootMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
