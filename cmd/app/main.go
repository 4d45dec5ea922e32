package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/Foodgram_Go/internal/bootstrap"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/server"
)

// @title Foodgram API
// @version 1.0
// @description Recipe sharing backend: recipes, catalog, favorites, shopping cart and subscriptions.
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
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	svcs, err := bootstrap.InitializeServices(cfg, repos)
	if err != nil {
		dbPool.Close()
		return err
	}

	acquired := func() int32 { return dbPool.Stat().AcquiredConns() }
	if err := bootstrap.RegisterCollectors(prometheus.DefaultRegisterer, svcs.Catalog, acquired); err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Dependencies{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		AdminKey:        cfg.AdminKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		Version:         cfg.Version,
		PageSize:        cfg.DefaultPageSize,
		DBPool:          dbPool,
		Catalog:         svcs.Catalog,
		Recipes:         svcs.Recipes,
		Ledger:          svcs.Ledger,
		Shopping:        svcs.Shopping,
		Users:           svcs.Users,
		Follows:         svcs.Follows,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		dbPool.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DBPool: dbPool})
	return nil
}
