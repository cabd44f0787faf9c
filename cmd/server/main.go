// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/sozercan/verdict/internal/config"
	"github.com/sozercan/verdict/internal/server"
	"github.com/sozercan/verdict/internal/verify"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	verifier, err := verify.NewClient(cfg.Verify.Endpoint, cfg.Verify.Timeout)
	if err != nil {
		log.Fatalf("failed to create verify client: %v", err)
	}

	srv := server.New(*cfg, verifier)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "endpoint", cfg.Verify.Endpoint)
	if err := srv.Run(context.Background()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
