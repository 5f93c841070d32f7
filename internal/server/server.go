package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/telesketch/telesketch-backend/internal/config"
	"github.com/telesketch/telesketch-backend/internal/websockets"
)

type Server struct {
	cfg *config.Config
	hub *websockets.Hub

	httpServer *http.Server
}

func NewServer(cfg *config.Config, hub *websockets.Hub) *Server {
	s := &Server{
		cfg: cfg,
		hub: hub,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.RegisterRoutes(),
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  time.Minute,
		WriteTimeout: 0, // long-lived websocket responses
	}

	return s
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
