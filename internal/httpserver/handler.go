package httpserver

import (
	apartmentHTTP "condopay-srv/internal/apartment/delivery/http"
	apartmentPostgre "condopay-srv/internal/apartment/repository/postgre"
	apartmentUC "condopay-srv/internal/apartment/usecase"
	authHTTP "condopay-srv/internal/auth/delivery/http"
	authUC "condopay-srv/internal/auth/usecase"
	eventsHTTP "condopay-srv/internal/events/delivery/http"
	eventsUC "condopay-srv/internal/events/usecase"
	"condopay-srv/internal/middleware"
	"condopay-srv/internal/sweep"
	sweepUC "condopay-srv/internal/sweep/usecase"
)

const Api = "/api/v1"

// mapHandlers builds the dependency graph and registers every route.
func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Repositories
	aptRepo := apartmentPostgre.New(srv.logger, srv.db)

	// Usecases
	registry := eventsUC.NewRegistry()
	evUC := eventsUC.New(srv.logger, registry)
	aptUC := apartmentUC.New(srv.logger, aptRepo, evUC)
	auUC := authUC.New(srv.logger, srv.authCfg, srv.jwtMgr, aptRepo)
	swUC := sweepUC.New(srv.logger, aptRepo, evUC, sweepUC.Config{
		DueSoonWindow:  srv.sweepCfg.DueSoonWindow,
		NotifyCooldown: srv.sweepCfg.NotifyCooldown,
	})

	srv.eventsUC = evUC
	srv.scheduler = sweep.NewScheduler(srv.logger, swUC, srv.sweepCfg.Interval)

	// Handlers
	mw := middleware.New(srv.logger, srv.jwtMgr)
	api := srv.gin.Group(Api)

	authHTTP.New(srv.logger, auUC).RegisterRoutes(api)
	apartmentHTTP.New(srv.logger, aptUC).RegisterRoutes(api, mw)
	eventsHTTP.New(srv.logger, evUC).RegisterRoutes(api, mw)

	return nil
}
