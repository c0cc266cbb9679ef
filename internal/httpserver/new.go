package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/middleware"
	"task-dashboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Dashboard domain
	dashboardUC dashboard.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitEnabled bool
	RateLimitPerMin  int

	// Dashboard domain
	DashboardUseCase dashboard.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		dashboardUC: cfg.DashboardUseCase,
		mw: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimitEnabled,
			RateLimitPerMin:  cfg.RateLimitPerMin,
		}),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dashboardUC == nil {
		return errors.New("dashboard use case is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
