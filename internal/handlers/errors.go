package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDimensionality):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUnitsUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &appErr):
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as a JSON error body. Server-side failures are
// logged and hidden behind fallback, with the request id to quote in reports.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error(fallback, slog.String("error", err.Error()))
		body := gin.H{"error": fallback}
		if requestID, ok := middleware.GetRequestIDFromContext(c); ok {
			body["requestId"] = requestID
		}
		c.JSON(status, body)
		return
	}
	logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
