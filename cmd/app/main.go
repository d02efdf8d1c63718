package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"spamwatch/internal/pkg/administrator"
	"spamwatch/internal/pkg/config"
	"spamwatch/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	admin := administrator.New(cfg)

	// Create a cancellable context so we can gracefully shut down.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := admin.StartProcessing(ctx); err != nil {
		logger.Log.Fatal("Failed to start batch processing", zap.Error(err))
	}

	// The analysis service accepts batches over HTTP until shut down.
	go admin.StartService(cfg.ServerPort)

	// Listen for OS signals to gracefully shut down.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	s := <-sigChan
	logger.Log.Info("Received signal, shutting down", zap.String("signal", s.String()))
	cancel()

	admin.Stop()

	// Give in-flight HTTP responses a moment to complete.
	time.Sleep(time.Second)
	logger.Log.Info("Shutdown complete")
}
