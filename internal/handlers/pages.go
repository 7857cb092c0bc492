package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/P3chys/catalogo-disciplinas/internal/apperrors"
	"github.com/P3chys/catalogo-disciplinas/internal/middleware"
	"github.com/P3chys/catalogo-disciplinas/internal/render"
)

// Index renders the landing page.
func Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, render.PageIndex, render.IndexPage{
			CurrentTime: time.Now().UTC(),
		})
	}
}

// NotFound renders the 404 page for unmatched routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.ErrRouteNotFound).SetType(gin.ErrorTypePrivate)
		c.HTML(http.StatusNotFound, render.PageNotFound, render.ErrorPage{
			CurrentTime: time.Now().UTC(),
			Path:        c.Request.URL.Path,
			RequestID:   middleware.GetRequestID(c),
		})
	}
}
