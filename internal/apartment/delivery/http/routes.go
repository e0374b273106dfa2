package http

import (
	"condopay-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the apartment billing routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	ap := r.Group("/apartments")
	ap.Use(mw.Auth())
	{
		// Resident self-service.
		ap.GET("/me", h.DetailMine)
		ap.POST("/me/pay", h.PayMine)

		admin := ap.Group("")
		admin.Use(mw.RequireAdmin())
		{
			admin.GET("", h.List)
			admin.POST("", h.Create)
			admin.GET("/dashboard", h.Dashboard)
			admin.GET("/:id", h.Detail)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
			admin.POST("/:id/pay", h.Pay)
			admin.POST("/:id/notify", h.Notify)
			admin.GET("/:id/history", h.History)
		}
	}
}
