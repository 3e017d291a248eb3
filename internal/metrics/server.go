package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Path is the URL path metrics are served on.
const Path = "/metrics"

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// Server serves Prometheus metrics until its context is cancelled.
type Server struct {
	srv    *http.Server
	ln     net.Listener
	logger zerolog.Logger
}

// Handler returns the mux serving Path.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, promhttp.Handler())
	return mux
}

// Listen binds addr. Use ":0" to pick a free port.
func Listen(addr string, logger zerolog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen on %s: %w", addr, err)
	}

	return &Server{
		srv: &http.Server{
			Handler:           Handler(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		ln:     ln,
		logger: logger,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Serve blocks until ctx is done, then shuts the server down.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.Addr()).Str("path", Path).Msg("metrics endpoint listening")
		errCh <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	s.logger.Debug().Msg("metrics endpoint stopped")
	return nil
}
