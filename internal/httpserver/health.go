package httpserver

import (
	"net/http"

	pkgErrors "condopay-srv/pkg/errors"
	"condopay-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed"))
		return
	}

	stats := srv.eventsUC.Stats(ctx)

	response.OK(c, gin.H{
		"status":           "healthy",
		"service":          "condopay-srv",
		"admin_streams":    stats.AdminStreams,
		"resident_streams": stats.ResidentStreams,
		"unique_residents": stats.UniqueResidents,
		"database":         "connected",
	})
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Database connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  "condopay-srv",
		"database": "connected",
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "condopay-srv",
	})
}
