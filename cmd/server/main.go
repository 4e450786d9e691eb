package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/checkout"
	"github.com/example/quickbite/pkg/config"
	"github.com/example/quickbite/pkg/notify"
	"github.com/example/quickbite/pkg/store"
	"github.com/example/quickbite/server"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting quickbite server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port))

	// Actor system owns the store and the notification sink
	system := actor.NewActorSystem()

	initial := store.State{}
	if cfg.Seed.Enabled {
		initial = store.SeedState()
	}

	st, err := store.New(system, logger, initial, store.ETAParams{
		BaseMinutes:     cfg.ETA.BaseMinutes,
		PerOrderMinutes: cfg.ETA.PerOrderMinutes,
	})
	if err != nil {
		logger.Fatal("Failed to create store", zap.Error(err))
	}

	notifier, err := notify.New(system, logger)
	if err != nil {
		logger.Fatal("Failed to create notifier", zap.Error(err))
	}

	checkoutSvc := checkout.NewService(st, notifier, cfg.Checkout.ProcessingDelay, logger)

	// Create server
	srv := server.New(cfg, logger, st, checkoutSvc, notifier)
	srv.SetupRoutes()

	// Start server in goroutine
	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			srvErr <- err
		}
	}()

	logger.Info("Server started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-srvErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if err := st.Stop(); err != nil {
		logger.Error("Failed to stop store", zap.Error(err))
	}

	logger.Info("Server stopped")
}
