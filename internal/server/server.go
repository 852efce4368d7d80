// Package server exposes the now-playing snapshot over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/edkf/album-visualizer/internal/nowplaying"
)

type Server struct {
	addr       string
	service    *nowplaying.Service
	httpServer *http.Server
	log        logrus.FieldLogger
}

func New(addr string, service *nowplaying.Service, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{addr: addr, service: service, log: log}
}

// Run serves until the context is cancelled. A failure to bind the listen
// address is fatal and comes back annotated with actionable guidance.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/now", s.handleNow)
	mux.HandleFunc("/api/cover", s.handleCover)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		s.log.Info("shutdown signal received, stopping http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Error("http server shutdown error")
		}
	}()

	s.log.WithField("addr", s.addr).Info("http server listening")
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w%s", err, bindHint(err, s.addr))
	}
	return nil
}

// bindHint turns common listen failures into something the operator can act
// on without reading errno tables.
func bindHint(err error, addr string) string {
	switch {
	case errors.Is(err, syscall.EADDRINUSE):
		return fmt.Sprintf(": %s is already in use; stop the other process or set LISTEN_PORT", addr)
	case errors.Is(err, syscall.EACCES):
		return ": permission denied; ports below 1024 need elevated privileges, pick a higher LISTEN_PORT"
	default:
		return ""
	}
}
