package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/haushalt/ledger/internal/config"
	"github.com/haushalt/ledger/internal/dictionary"
	"github.com/haushalt/ledger/internal/httpapi"
	"github.com/haushalt/ledger/internal/storage"
	filestore "github.com/haushalt/ledger/internal/storage/file"
	pgstore "github.com/haushalt/ledger/internal/storage/postgres"
	"github.com/haushalt/ledger/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg)
	slog.SetDefault(logger)

	var (
		snapStore storage.SnapshotStore
		closeFn   func()
	)
	if cfg.DatabaseURL != "" {
		pg, err := pgstore.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = pg.Close
		snapStore = pg
		logger.Info("storage backend: postgres")
	} else {
		snapStore = filestore.New(cfg.SnapshotPath)
		logger.Info("storage backend: file", "path", cfg.SnapshotPath)
	}

	st := store.New()
	snap, found, err := snapStore.Load(ctx)
	if err != nil {
		logger.Error("snapshot load failed", "err", err)
		os.Exit(1)
	}
	if found {
		if err := st.ImportSnapshot(snap); err != nil {
			logger.Error("snapshot import failed", "err", err)
			os.Exit(1)
		}
		logger.Info("snapshot restored",
			"persons", len(snap.Persons),
			"accounts", len(snap.Accounts),
			"transactions", len(snap.Transactions),
		)
	} else {
		st.SeedCategories(dictionary.DefaultCategories())
		logger.Info("no snapshot found, seeded default categories")
	}

	api := httpapi.New(st, snapStore, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Handler(),
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ledger service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
	if closeFn != nil {
		closeFn()
	}
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(cfg *config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
