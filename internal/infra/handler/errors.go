package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
)

func respondBindingError(c *gin.Context, err error) {
	slog.Warn("request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Field:   "",
	})
}

func respondError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
			Field:   "",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}
