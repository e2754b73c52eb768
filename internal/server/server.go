package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/information-sharing-networks/solana-gateway/internal/config"
	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	gatewayhandlers "github.com/information-sharing-networks/solana-gateway/internal/gateway/handlers"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
	"github.com/information-sharing-networks/solana-gateway/internal/server/handlers"
	gatewaymiddleware "github.com/information-sharing-networks/solana-gateway/internal/server/middleware"
	"github.com/information-sharing-networks/solana-gateway/internal/version"
)

type Server struct {
	config   *config.ServerEnvironment
	logger   *slog.Logger
	router   *chi.Mux
	registry *prometheus.Registry
	metrics  *gatewaymiddleware.Metrics
}

func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) (*Server, error) {
	server := &Server{
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	if cfg.MetricsEnabled {
		if err := server.initMetrics(); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server, nil
}

// initMetrics creates a registry for this server with the request metrics and the standard go/process collectors
func (s *Server) initMetrics() error {
	s.registry = prometheus.NewRegistry()

	if err := s.registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	if err := s.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return err
	}

	metrics, err := gatewaymiddleware.NewMetrics(s.registry)
	if err != nil {
		return err
	}
	s.metrics = metrics
	return nil
}

// Handler returns the configured router
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(gatewaymiddleware.SecurityHeaders(s.config.Environment))
	if s.metrics != nil {
		s.router.Use(s.metrics.Middleware)
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gateway.RespondWithError(w, r, gateway.NewNotFoundError("Not found"))
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		gateway.RespondWithError(w, r, gateway.NewMethodNotAllowedError("Method not allowed"))
	})
}

func (s *Server) registerRoutes() {
	// infrastructure routes are not rate limited
	s.router.Get("/health", handlers.HandleHealth)
	s.router.Get("/version", handlers.HandleVersion(version.Get()))
	s.router.Get("/swagger/doc.json", handlers.HandleSwaggerDoc)
	if s.registry != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	sendToken := gatewayhandlers.NewSendTokenHandler(uint8(s.config.DefaultTokenDecimals)) // #nosec G115 -- range checked in validateConfig

	s.router.Group(func(r chi.Router) {
		r.Use(gatewaymiddleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
		r.Use(gatewaymiddleware.RequestSizeLimit(s.config.MaxRequestBodySize))

		r.Get("/keypair", gatewayhandlers.HandleKeypair)
		r.Post("/keypair", gatewayhandlers.HandleKeypair)

		r.Post("/token/create", gatewayhandlers.HandleCreateToken)
		r.Post("/token/mint", gatewayhandlers.HandleMintToken)

		r.Post("/message/sign", gatewayhandlers.HandleSignMessage)
		r.Post("/message/verify", gatewayhandlers.HandleVerifyMessage)

		r.Post("/send/sol", gatewayhandlers.HandleSendSol)
		r.Post("/send/token", sendToken.HandleSendToken)
	})
}

// Start listens on the configured address and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then shuts down gracefully
// waiting at most SERVER_SHUTDOWN_TIMEOUT for in-flight requests.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", listener.Addr().String()))

		err := httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
