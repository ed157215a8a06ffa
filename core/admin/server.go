package admin

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"remote-controller/core/audit"
	"remote-controller/core/logger"
	"remote-controller/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultWakeLimit = 20
	maxWakeLimit     = 100
	shutdownTimeout  = 5 * time.Second
)

// Server is the admin status server.
type Server struct {
	app      *fiber.App
	addr     string
	ready    atomic.Bool
	recorder audit.Recorder
	logger   *zap.Logger
}

// New creates the admin server and registers its routes.
func New(cfg Config, recorder audit.Recorder, log *zap.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		}),
		addr:     cfg.ListenAddress,
		recorder: recorder,
		logger:   log,
	}

	// RayID must be first to trace everything
	s.app.Use(rayid.New())
	s.app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(s.logger, c)
		l.Debug("Admin request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Admin request error", zap.Error(err))
		}
		return err
	})

	s.app.Get("/health", s.handleHealth)
	s.app.Get("/ready", s.handleReady)
	s.app.Get("/wakes", s.handleWakes)

	return s
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetReady flips the readiness reported by /ready.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Warn("Admin server shutdown failed", zap.Error(err))
		}
	})
	defer stop()

	s.logger.Info("Admin server listening", zap.String("addr", ln.Addr().String()))
	if err := s.app.Listener(ln); err != nil {
		return fmt.Errorf("admin server: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (s *Server) handleReady(c *fiber.Ctx) error {
	if s.ready.Load() {
		return c.SendString("ready")
	}
	return c.Status(fiber.StatusServiceUnavailable).SendString("not ready")
}

func (s *Server) handleWakes(c *fiber.Ctx) error {
	limit := defaultWakeLimit
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
		}
		limit = min(n, maxWakeLimit)
	}

	events, err := s.recorder.Recent(c.UserContext(), limit)
	if err != nil {
		logger.WithRayID(s.logger, c).Error("Failed to load wake events", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if events == nil {
		events = []audit.WakeEvent{}
	}

	return c.JSON(fiber.Map{
		"count":  len(events),
		"events": events,
	})
}
