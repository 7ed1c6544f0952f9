// Package web exposes the resistor analysis HTTP API.
package web

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"

	"github.com/ohmscope/ohmscope/internal/config"
	"github.com/ohmscope/ohmscope/internal/metrics"
	"github.com/ohmscope/ohmscope/pkg/decoder"
)

// Version reported by the status endpoints.
const Version = "1.1.0"

// Server is the analysis API server.
type Server struct {
	app     *fiber.App
	addr    string
	decoder decoder.Provider
	metrics *metrics.Metrics
	logger  *slog.Logger

	timeout      time.Duration
	maxImageSide int
}

// New creates the API server around a band decoder.
func New(cfg *config.Config, dec decoder.Provider, m *metrics.Metrics, logger *slog.Logger) *Server {
	s := &Server{
		addr:         cfg.Addr,
		decoder:      dec,
		metrics:      m,
		logger:       logger.With("component", "web"),
		timeout:      time.Duration(cfg.RequestTimeoutMS) * time.Millisecond,
		maxImageSide: cfg.MaxImageSide,
	}

	app := fiber.New(fiber.Config{
		AppName:               "ohmscope",
		DisableStartupMessage: true,
		BodyLimit:             cfg.MaxUploadBytes,
	})

	// Open CORS for LAN testing; the camera frontend is served elsewhere.
	app.Use(cors.New())
	app.Use(requestID)

	app.Get("/", s.handleRoot)
	app.Get("/healthz", s.handleHealthz)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	api := app.Group("/api")
	api.Post("/analyze", s.handleAnalyze)
	api.Get("/status", s.handleStatus)

	s.app = app
	return s
}

// Start blocks serving the API.
func (s *Server) Start() error {
	s.logger.Info("listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// requestID tags every request with an ID, honoring one supplied by the
// caller.
func requestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals("request_id", id)
	c.Set("X-Request-ID", id)
	return c.Next()
}
