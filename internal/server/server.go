package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"JaundiceRate/internal/metrics"
	"JaundiceRate/internal/ports"
)

const (
	defaultMaxURLs  = 10
	shutdownTimeout = 10 * time.Second
)

// Config describes the HTTP endpoint.
type Config struct {
	Addr    string
	MaxURLs int
}

// Server exposes the batch processor over HTTP.
type Server struct {
	echo      *echo.Echo
	addr      string
	maxURLs   int
	processor ports.BatchProcessor
	logger    *slog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds the echo application with its routes.
func New(cfg Config, processor ports.BatchProcessor, m *metrics.Metrics, logger *slog.Logger) *Server {
	if cfg.MaxURLs <= 0 {
		cfg.MaxURLs = defaultMaxURLs
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		addr:      cfg.Addr,
		maxURLs:   cfg.MaxURLs,
		processor: processor,
		logger:    logger,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request completed",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds())
			return nil
		},
	}))

	e.GET("/", s.handleRate)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if reg := m.Registry(); reg != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", s.addr)
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func (s *Server) handleRate(c echo.Context) error {
	raw := c.QueryParam("urls")
	// Raw entries count against the cap, blanks included.
	if raw != "" && strings.Count(raw, ",")+1 > s.maxURLs {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("too many urls in request, should be %d or less", s.maxURLs),
		})
	}

	urls := splitURLs(raw)
	if len(urls) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "urls query parameter is required"})
	}

	results := s.processor.ProcessAll(c.Request().Context(), urls)
	return c.JSON(http.StatusOK, results)
}

func splitURLs(raw string) []string {
	var urls []string
	for _, part := range strings.Split(raw, ",") {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
