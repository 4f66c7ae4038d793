package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/asakaida/prodattr/internal/infrastructure/logger"
	"github.com/asakaida/prodattr/internal/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// AdminIDHeader carries the id of the operator performing a mutation
const AdminIDHeader = "X-Admin-Id"

// HealthChecker reports whether a backing store is reachable
type HealthChecker func(ctx context.Context) error

// Server is the HTTP admin API
type Server struct {
	echo    *echo.Echo
	logger  *zap.Logger
	port    int
	health  HealthChecker
	handler *ProductAttrHandler
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithPort sets the listen port
func WithPort(port int) ServerOption {
	return func(s *Server) {
		s.port = port
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithHealthCheck sets the check run by /healthz
func WithHealthCheck(check HealthChecker) ServerOption {
	return func(s *Server) {
		s.health = check
	}
}

// NewServer creates the admin API for service
func NewServer(service services.ProductAttrServiceInterface, opts ...ServerOption) *Server {
	s := &Server{
		echo:   echo.New(),
		logger: zap.NewNop(),
		port:   8080,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = NewProductAttrHandler(service)

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.EchoRequestLogger(s.logger))

	e.GET("/healthz", s.healthz)
	s.handler.RegisterRoutes(e.Group("/admin/v1"))

	return s
}

func (s *Server) healthz(c echo.Context) error {
	if s.health != nil {
		if err := s.health(c.Request().Context()); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start listens on the configured port until Shutdown is called
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
