package httpserver

import (
	"context"
	"errors"
	"net/http"

	"littlelemon/internal/domain"
	cartsvc "littlelemon/internal/service/cart"
	checkoutsvc "littlelemon/internal/service/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps service errors to status codes. Unknown errors are logged and
// reported as 500 without detail.
func (h *handlers) writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, cartsvc.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, errorResponse{Error: checkoutsvc.EmptyCartMessage})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "already exists"})
	case errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "session expired"})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "request timed out"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
}
