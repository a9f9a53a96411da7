package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/MultiplierShop/docs"
	"github.com/osse101/MultiplierShop/internal/bootstrap"
	"github.com/osse101/MultiplierShop/internal/config"
	"github.com/osse101/MultiplierShop/internal/server"
	"github.com/osse101/MultiplierShop/internal/shop"
)

// shutdownTimeout bounds draining of in-flight requests.
const shutdownTimeout = 10 * time.Second

// @title Multiplier Shop API
// @version 1.0
// @description Prices multiplier items on a growing cost curve and finds the largest purchase a budget covers.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	items, err := bootstrap.LoadCatalog(cfg.ItemsConfigPath)
	if err != nil {
		return err
	}

	shopService := shop.NewService(items, bootstrap.ShopConfig(cfg))
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, shopService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, srv)
	return nil
}
