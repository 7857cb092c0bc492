package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/P3chys/catalogo-disciplinas/internal/apperrors"
	"github.com/P3chys/catalogo-disciplinas/internal/render"
)

// Recovery turns a panic into the 500 page.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		_ = c.Error(fmt.Errorf("%w: %v", apperrors.ErrInternalFault, recovered))
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
		)
		InternalError(c)
	})
}

// InternalError renders the 500 page and aborts the chain.
func InternalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, render.PageInternal, render.ErrorPage{
		CurrentTime: time.Now().UTC(),
		Path:        c.Request.URL.Path,
		RequestID:   GetRequestID(c),
	})
	c.Abort()
}
