package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Alexmuzz/zezamii-test/internal/app"
	"github.com/Alexmuzz/zezamii-test/internal/config"
	"github.com/Alexmuzz/zezamii-test/internal/database"
	"github.com/Alexmuzz/zezamii-test/internal/handlers"
	"github.com/Alexmuzz/zezamii-test/internal/logging"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	users, closeStore, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if n, err := database.SeedUsers(ctx, users, cfg.SeedUsers); err != nil {
		return err
	} else if n > 0 {
		logger.Info("seeded users", zap.Int("count", n))
	}

	a := app.New(users, logger)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handlers.NewRouter(a),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Addr),
			zap.String("db_driver", cfg.DBDriver),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
