package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/sunlinkenergy/sunlink-backend/api/routes"
	"github.com/sunlinkenergy/sunlink-backend/internal/notifier"
	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	"github.com/sunlinkenergy/sunlink-backend/pkg/config"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
	"github.com/sunlinkenergy/sunlink-backend/pkg/storage/local"
)

const shutdownGrace = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	storageClient, err := local.Open(context.Background(), cfg.Storage, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open local storage", err)
		os.Exit(1)
	}

	persister, err := store.NewLocalPersister(storageClient, cfg.Storage.StoreName)
	if err != nil {
		logg.Error(context.Background(), "failed to create persister", err)
		os.Exit(1)
	}

	st, err := store.New(context.Background(), store.Options{
		Persister: persister,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap store", err)
		os.Exit(1)
	}

	wa := notifier.NewWhatsApp(cfg.WhatsApp)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, st, storageClient, wa, registry),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		closeErr := multierr.Combine(
			server.Shutdown(shutdownCtx),
			storageClient.Close(),
		)
		if closeErr != nil {
			logg.Error(ctx, "shutdown completed with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
