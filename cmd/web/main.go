package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dnalab/internal/config"
	"dnalab/internal/logger"
	"dnalab/internal/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func gracefulShutdown(ctx context.Context, srv *server.Server, logger *zap.Logger) error {
	// Wait for the interrupt signal or a failed listener
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	// The server has 30 seconds to finish the requests it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := srv.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %v\n", err)
		os.Exit(2)
	}

	// Initialize logger
	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting DNA Laboratory site",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("public_dir", cfg.Resources.PublicDir),
		zap.String("resource_base_url", cfg.Resources.BaseURL),
		zap.Bool("rate_limit", cfg.RedisEnabled()),
	)

	// Create server
	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := gracefulShutdown(ctx, srv, log)
		// Allow Ctrl+C to force shutdown
		stop()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Fatal("HTTP server error", zap.Error(err))
	}
	log.Info("Graceful shutdown complete")
}
