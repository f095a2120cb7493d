package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/config"
	"github.com/aslearntocode/financial-health-sub000/internal/session"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server exposes the calculators and simulation sessions over HTTP.
type Server struct {
	sessions *session.Manager
	parser   *config.InputParser
	logger   calculation.Logger
	router   *gin.Engine
}

// NewServer creates the router. limiter may be nil to disable rate limiting.
func NewServer(sessions *session.Manager, limiter *RateLimiter, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		sessions: sessions,
		parser:   config.NewInputParser(),
		logger:   logger,
		router:   router,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	if limiter != nil {
		api.Use(RateLimitMiddleware(limiter))
	}
	{
		api.GET("/score/actions", s.handleActions)
		api.POST("/score/impact", s.handleImpact)

		api.POST("/sessions", s.handleCreateSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.DELETE("/sessions/:id", s.handleEndSession)
		api.POST("/sessions/:id/simulations", s.handleRecord)
		api.DELETE("/sessions/:id/simulations", s.handleClear)

		api.POST("/corpus/projection", s.handleProjection)
		api.POST("/corpus/required-savings", s.handleRequiredSavings)
	}

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, cfg *config.ServerConfig) error {
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Infof("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serverErr
}

func requestLogger(logger calculation.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
