// Package main runs the back-office ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ortosalon/backoffice/internal/api"
	"github.com/ortosalon/backoffice/internal/auth"
	"github.com/ortosalon/backoffice/internal/config"
	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/storage"
)

func main() {
	// Setup structured JSON logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	business, err := config.LoadBusiness(cfg.BusinessFile)
	if err != nil {
		slog.Error("failed to load business config", "error", err, "path", cfg.BusinessFile)
		os.Exit(1)
	}

	// Initialize persistence gateway.
	gateway, err := storage.New(cfg.StorageTarget, cfg.StorageMasterKey)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err, "target", cfg.StorageTarget)
		os.Exit(1)
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	slog.Info("storage initialized", "target", cfg.StorageTarget)

	// Initialize ledger store and load the persisted document.
	store := ledger.New(gateway, ledger.Options{
		DefaultExchangeRate: business.DefaultExchangeRate,
		Countries:           business.CountryCodes(),
		Outlets:             business.Outlets,
	})
	store.Load(context.Background())

	// Initialize session manager from the configured accounts.
	accounts := make(map[string]auth.Account, len(business.Accounts))
	for _, a := range business.Accounts {
		accounts[a.Username] = auth.Account{
			Password:    a.Password,
			DisplayName: a.DisplayName,
		}
	}
	authManager := auth.NewManager(accounts)

	r := api.NewRouter(store, authManager, business)

	// Start server.
	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("starting back-office server", "addr", addr, "port", cfg.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
