// Package server exposes grid searches and step-by-step sessions over HTTP.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdrpinto/gridastar/internal/cache"
	"github.com/pdrpinto/gridastar/internal/logger"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Config holds the dependencies of a Server.
type Config struct {
	Addr          string
	BaseURL       string
	Store         cache.Store
	Logger        *logger.Logger
	SearchWorkers int
	MaxGridCells  int
	MaxSessions   int
}

// Server wires the controllers into a gin engine.
type Server struct {
	addr        string
	baseURL     string
	log         *logger.Logger
	controllers []Controller
}

// New builds a Server from cfg, filling defaults for zero values.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("server logger is required")
	}
	if cfg.Store == nil {
		cfg.Store = cache.NewMemoryStore(5 * time.Minute)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/api"
	}
	if cfg.SearchWorkers < 1 {
		cfg.SearchWorkers = 1
	}
	if cfg.MaxGridCells < 1 {
		cfg.MaxGridCells = 250000
	}
	if cfg.MaxSessions < 1 {
		cfg.MaxSessions = 64
	}

	limits := gridLimits{maxCells: cfg.MaxGridCells}
	return &Server{
		addr:    cfg.Addr,
		baseURL: cfg.BaseURL,
		log:     cfg.Logger,
		controllers: []Controller{
			NewSearchController(cfg.Store, cfg.Logger, limits, cfg.SearchWorkers),
			NewSessionController(newSessionStore(cfg.MaxSessions), cfg.Logger, limits),
		},
	}, nil
}

// Handler returns the configured gin engine.
func (s *Server) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group(s.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range s.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.log.Info(fmt.Sprintf("Listening on %s", s.addr))
	return s.Handler().Run(s.addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		s.log.Debug(fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start)))
	}
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
