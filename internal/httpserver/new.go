package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"assistant-tools/internal/middleware"
	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP gateway.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Function registries
	calendar *rpc.Registry
	tasks    *rpc.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	RequestsPerMin int

	Calendar *rpc.Registry
	Tasks    *rpc.Registry
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		calendar:    cfg.Calendar,
		tasks:       cfg.Tasks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.RequestsPerMin)
	srv.mapHandlers()

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
	if srv.calendar == nil || srv.tasks == nil {
		return errors.New("calendar and task registries are required")
	}
	return nil
}
