// Command server runs the game reviews HTTP API.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamereviews/internal/config"
	"gamereviews/internal/middleware"
	"gamereviews/internal/observability"
	"gamereviews/internal/server"
)

const version = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "gamereviews-api",
		ServiceVersion: version,
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExport,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   1.0,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	srv, err := server.NewServer(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		middleware.Logger.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			middleware.Logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
		if err := shutdownTracing(ctx); err != nil {
			middleware.Logger.Error("Tracer shutdown error", slog.String("error", err.Error()))
		}
	}()

	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
