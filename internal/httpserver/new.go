package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "shopfloor-tasks/internal/auth/delivery/http"
	"shopfloor-tasks/internal/middleware"
	taskHTTP "shopfloor-tasks/internal/task/delivery/http"
	"shopfloor-tasks/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw          middleware.Middleware
	taskHandler taskHTTP.Handler
	authHandler authHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware  middleware.Middleware
	TaskHandler taskHTTP.Handler
	AuthHandler authHTTP.Handler
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
		mw:          cfg.Middleware,
		taskHandler: cfg.TaskHandler,
		authHandler: cfg.AuthHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	return nil
}
