package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the login routes. They are unauthenticated.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	au := r.Group("/auth")
	{
		au.POST("/admin", h.AdminLogin)
		au.POST("/resident", h.ResidentLogin)
	}
}
