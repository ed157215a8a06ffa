package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"remote-controller/core/logger"
	"remote-controller/core/request"
	"remote-controller/core/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
)

const maxAcceptDelay = time.Second

// Dispatcher produces the response for a parsed request.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *request.Request) response.Response
}

// Server is the raw-protocol listener.
type Server struct {
	cfg        Config
	dispatcher Dispatcher
	logger     *zap.Logger

	wg sync.WaitGroup
}

// New creates a server. The config is copied and never modified afterwards.
func New(cfg Config, dispatcher Dispatcher, logger *zap.Logger) *Server {
	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ListenAndServe binds cfg.ListenAddress and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddress, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then closes ln and
// waits for in-flight connections to finish. It returns nil on cancellation.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()
	defer s.wg.Wait()

	s.logger.Info("Listening", zap.String("addr", ln.Addr().String()))

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("Listener stopped")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}

			// Back off on repeated accept failures (e.g. EMFILE) instead of spinning.
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay *= 2
			}
			if delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			s.logger.Warn("Accept failed", zap.Error(err), zap.Duration("retry_in", delay))
			time.Sleep(delay)
			continue
		}
		delay = 0

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(ctx, conn)
		}()
	}
}

// handle runs one connection cycle. Nothing that happens here may escape to the accept loop.
func (s *Server) handle(ctx context.Context, conn net.Conn) {
	l := logger.WithConnection(s.logger, uuid.NewString(), conn.RemoteAddr().String())

	defer func() {
		if rec := recover(); rec != nil {
			l.Error("Recovered panic in connection handler", zap.Any("panic", rec), zap.Stack("stack"))
		}
		if err := conn.Close(); err != nil {
			l.Debug("Close failed", zap.Error(err))
		}
	}()

	// In-flight requests complete even while the listener shuts down.
	ctx = logger.IntoContext(context.WithoutCancel(ctx), l)

	if err := s.serveConn(ctx, conn, l); err != nil {
		l.Warn("Connection dropped", zap.Error(err))
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn, l *zap.Logger) error {
	if d := s.cfg.ReadTimeout(); d > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(d)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}
	}

	req, err := request.Parse(conn, s.cfg.ParseOptions())
	if err != nil {
		var perr *request.ParseError
		if !errors.As(err, &perr) {
			return fmt.Errorf("read request: %w", err)
		}

		l.Warn("Malformed request", zap.Error(err))
		if err := s.write(conn, response.Teapot()); err != nil {
			return fmt.Errorf("write teapot response: %w", err)
		}
		return nil
	}
	req.RemoteAddr = conn.RemoteAddr().String()

	l.Info("Request received",
		zap.String("method", string(req.Method)),
		zap.String("path", req.Path),
		zap.Int("headers", len(req.Headers)),
	)

	resp := s.dispatcher.Dispatch(ctx, req)

	if err := s.write(conn, resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	l.Info("Response sent", zap.Int("status", int(resp.Status)))
	return nil
}

func (s *Server) write(conn net.Conn, resp response.Response) error {
	if d := s.cfg.WriteTimeout(); d > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(d)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}
	return response.Write(conn, resp)
}
