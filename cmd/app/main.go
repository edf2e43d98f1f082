package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/PotionGacha_Go/docs"
	"github.com/osse101/PotionGacha_Go/internal/bootstrap"
	"github.com/osse101/PotionGacha_Go/internal/config"
	"github.com/osse101/PotionGacha_Go/internal/gacha"
	"github.com/osse101/PotionGacha_Go/internal/inventory"
	"github.com/osse101/PotionGacha_Go/internal/server"
)

// @title           PotionGacha API
// @version         1.0
// @description     Player inventory, potion consumption and gacha draws.
// @BasePath        /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Application stopped with error", "error", err)
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	items, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		storage.Pool.Close()
		return err
	}

	engine := gacha.NewEngine(items.Weighted())
	svc := inventory.NewService(storage.Inventory, items, engine, cfg.Limits())

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		DBPool:      storage.Pool,
		Players:     storage.Inventory,
		Inventory:   svc,
		Items:       items,
		Limits:      cfg.Limits(),
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Pool:   storage.Pool,
	})

	return runErr
}
