package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"modernshop/internal/domain"
)

const inconsistentCartMessage = "Cart references a product that no longer exists"

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func abortMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}

// abortInvalid answers 400 with field errors when err is a validation failure.
func abortInvalid(c *gin.Context, err error, message string) bool {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: message, Errors: verr.Fields})
	return true
}

// respondError maps service errors onto HTTP statuses. notFound is the message
// for domain.ErrNotFound and failed the message for unexpected errors.
func (h *handlers) respondError(c *gin.Context, err error, notFound, failed string) {
	switch {
	case abortInvalid(c, err, "Invalid request data"):
	case errors.Is(err, domain.ErrProductNotFound):
		abortMessage(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrNotFound):
		abortMessage(c, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrInconsistent):
		h.logger.Error("inconsistent store state", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		abortMessage(c, http.StatusInternalServerError, inconsistentCartMessage)
	default:
		h.logger.Error(failed, zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		abortMessage(c, http.StatusInternalServerError, failed)
	}
}
