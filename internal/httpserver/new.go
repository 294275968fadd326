package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	captureUC "day-planner/internal/capture/usecase"
	"day-planner/pkg/extractor"
	"day-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	llm        extractor.IExtractor
	calendar   captureUC.Calendar

	jwtSecret       string
	defaultTimezone string
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	LLM        extractor.IExtractor
	Calendar   captureUC.Calendar // nil disables mirroring

	JWTSecret       string
	DefaultTimezone string
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.PostgresDB,
		llm:             cfg.LLM,
		calendar:        cfg.Calendar,
		jwtSecret:       cfg.JWTSecret,
		defaultTimezone: cfg.DefaultTimezone,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
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
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("extractor client is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
