package httpapi

import (
	"errors"
	"net/http"

	"github.com/bnema/dsec/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAppNotFound), errors.Is(err, domain.ErrSecretNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAppAlreadyExists), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the mapped status. Server-side failures are logged
// and reported with a generic message.
func writeError(c *gin.Context, fallback *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		GetLogger(c, fallback).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(status, failure(internalErrorMessage))
		return
	}

	c.JSON(status, failure(err.Error()))
}
