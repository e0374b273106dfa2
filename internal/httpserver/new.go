package httpserver

import (
	"database/sql"
	"errors"

	"condopay-srv/config"
	"condopay-srv/internal/events"
	"condopay-srv/internal/sweep"
	pkgLog "condopay-srv/pkg/log"
	"condopay-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer carries the server wiring. New only validates dependencies;
// Run (in httpserver.go) starts the background services and serves HTTP.
type HTTPServer struct {
	gin    *gin.Engine
	logger pkgLog.Logger
	port   int
	mode   string

	db     *sql.DB
	jwtMgr scope.Manager

	authCfg  config.AuthConfig
	sweepCfg config.SweepConfig

	// Populated by mapHandlers.
	eventsUC  events.UseCase
	scheduler *sweep.Scheduler
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB         *sql.DB
	JWTManager scope.Manager

	Auth  config.AuthConfig
	Sweep config.SweepConfig
}

// New creates a new HTTPServer. It does not start any goroutines.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:      gin.New(),
		logger:   logger,
		port:     cfg.Port,
		mode:     cfg.Mode,
		db:       cfg.DB,
		jwtMgr:   cfg.JWTManager,
		authCfg:  cfg.Auth,
		sweepCfg: cfg.Sweep,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database handle is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	return nil
}
