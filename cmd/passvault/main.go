package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akhileshasapu/passvault/internal/config"
	"github.com/akhileshasapu/passvault/internal/database"
	"github.com/akhileshasapu/passvault/internal/handlers"
	"github.com/akhileshasapu/passvault/internal/logging"
	"github.com/akhileshasapu/passvault/internal/metrics"
	"github.com/akhileshasapu/passvault/internal/middleware"
	"github.com/akhileshasapu/passvault/internal/services"
	"github.com/akhileshasapu/passvault/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	jwtService, err := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	if err != nil {
		return fmt.Errorf("failed to configure tokens: %w", err)
	}

	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	authService := services.NewAuthService(st, hasher, jwtService, logger)
	vaultService := services.NewVaultService(st, logger)

	m := metrics.New()

	router := handlers.NewRouter(handlers.RouterConfig{
		Production:     cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
		Verifier:       jwtService,
		Auth:           handlers.NewAuthHandler(authService, m, logger),
		Vault:          handlers.NewVaultHandler(vaultService, logger),
		Health:         handlers.NewHealthHandler(st, logger),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.Handle("/", middleware.RequestLogging(router, logger, m))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store.NewPostgresStore(db), db.Close, nil
}
