// Package server exposes the chat pipeline over HTTP.
//
// Routes:
//
//	POST /chat   -> chat pipeline
//	GET  /health -> liveness probe
//	GET  /ready  -> readiness probe
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultAddr = "127.0.0.1:8080"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 120 * time.Second
	idleTimeout       = 120 * time.Second
)

type Server struct {
	mux *http.ServeMux

	chat   *ChatHandler
	health *HealthHandler
}

func New(chat *ChatHandler, health *HealthHandler) *Server {
	mux := http.NewServeMux()

	s := &Server{
		mux:    mux,
		chat:   chat,
		health: health,
	}

	s.chat.RegisterRoutes(mux)
	s.health.RegisterRoutes(mux)

	return s
}

// Handler returns the mux with middleware applied, outermost first:
// recovery -> cors -> logging.
func (s *Server) Handler() http.Handler {
	return chain(s.mux, recoveryMiddleware, corsMiddleware, loggingMiddleware)
}

// Run blocks until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting http server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
