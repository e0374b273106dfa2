package http

import (
	"condopay-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the event stream routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	ev := r.Group("/events")
	ev.Use(mw.Auth())
	{
		ev.GET("/subscribe", h.Subscribe)
	}
}
