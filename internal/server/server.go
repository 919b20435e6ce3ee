// Package server exposes the scoring engine over HTTP. Handlers stay thin:
// they decode, call the engine packages, persist through the store, and
// encode. All domain rules live in the engine.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/oraleval"
	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/store"
)

// Config holds the HTTP layer settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowOrigins for CORS. Empty means allow all, which suits local
	// development; deployments set the frontend origin explicitly.
	AllowOrigins []string
}

// Server wires handlers to the engine and the store.
type Server struct {
	store     *store.Store
	evaluator *oraleval.Evaluator
	cfg       Config
	engine    *gin.Engine
}

// New builds the router. evaluator may be nil-provider backed; the evaluate
// endpoint then serves fallback verdicts.
func New(st *store.Store, evaluator *oraleval.Evaluator, cfg Config) *Server {
	s := &Server{
		store:     st,
		evaluator: evaluator,
		cfg:       cfg,
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api/v1")
	{
		api.POST("/grade", s.handleGrade)
		api.POST("/grade/finalize", s.handleFinalize)
		api.POST("/align", s.handleAlign)
		api.POST("/evaluate", s.handleEvaluate)
		api.GET("/attempts/:id", s.handleGetAttempt)
	}

	s.engine = r
	return s
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Addr)
}

// Router exposes the gin engine, mainly for httptest.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

func (s *Server) corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(s.cfg.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = s.cfg.AllowOrigins
		c.AllowCredentials = true
	}
	return c
}
