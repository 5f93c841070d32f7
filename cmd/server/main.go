package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/telesketch/telesketch-backend/internal/config"
	"github.com/telesketch/telesketch-backend/internal/game"
	"github.com/telesketch/telesketch-backend/internal/server"
	"github.com/telesketch/telesketch-backend/internal/websockets"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Server] No .env file found, using environment defaults")
	}

	cfg := config.Load()

	hub := websockets.NewHub()
	registry := game.NewRegistry(cfg.RoomSettings(), hub)
	hub.SetRegistry(registry)

	srv := server.NewServer(cfg, hub)

	go func() {
		log.Printf("[Server] Running on http://%s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[Server] Listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[Server] Forced to shutdown: %v", err)
	}

	log.Println("[Server] Server closed")
}
