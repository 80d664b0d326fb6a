package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server hosts the scoreboard HTTP endpoint.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a server with the scoreboard handler mounted at /scores.
func NewServer(addr string, handler http.Handler) *Server {
	mux := http.NewServeMux()
	mux.Handle("/scores", handler)
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("scoreboard API listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting new requests and drains in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
