package vhttp

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Server is the serving loop: it accepts connections and handles each on
// its own goroutine until stopped.
type Server struct {
	http     *http.Server
	log      *zerolog.Logger
	listener net.Listener
}

func NewServer(address string, handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: &log.Logger,
	}
}

// Listen binds the server address. It is called by Serve when needed and
// exists on its own so callers can learn the bound address first.
func (s *Server) Listen() (net.Addr, error) {
	if s.listener == nil {
		listener, err := net.Listen("tcp", s.http.Addr)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to listen on %s", s.http.Addr)
		}
		s.listener = listener
	}

	return s.listener.Addr(), nil
}

// Serve blocks until the server is stopped. A graceful stop is not an
// error.
func (s *Server) Serve() error {
	addr, err := s.Listen()
	if err != nil {
		return err
	}

	s.log.Info().Str("address", addr.String()).Msg("listening")

	err = s.http.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Stop refuses new connections and waits for in-flight requests. When ctx
// ends first the remaining connections are closed and the ctx error is
// returned.
func (s *Server) Stop(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if err != nil {
		if closeErr := s.http.Close(); closeErr != nil {
			s.log.Error().Err(closeErr).Msg("failed to close server")
		}
		return err
	}

	return nil
}
