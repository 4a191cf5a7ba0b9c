package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldengate/config"
	httpHandler "goldengate/internal/adapter/http/handler"
	"goldengate/internal/adapter/memstore"
	"goldengate/internal/service"
	"goldengate/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Mock.Mode).
		Int("port", cfg.Mock.Port).
		Msg("Starting goldengate mock exchange")

	if cfg.Mock.JWTSecret == "" {
		log.Fatal().Msg("GG_MOCK_JWT_SECRET must be set")
	}

	// In-memory state
	nonces := memstore.NewNonceStore(cfg.Mock.NonceTTL)
	book := memstore.NewOfferBook()
	ledger := memstore.NewLedger()

	// Core services
	siweSvc := service.NewSIWEService()
	tokenSvc := service.NewJWTTokenService(cfg.Mock.JWTSecret, cfg.Mock.JWTExpiry, "goldengate-mock")

	depositAddress := cfg.Token.Contract
	if depositAddress == "" {
		// Any syntactically valid address does for a dev book.
		depositAddress = "0x000000000000000000000000000000000000dEaD"
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Nonces:         nonces,
		Book:           book,
		Ledger:         ledger,
		SIWE:           siweSvc,
		Tokens:         tokenSvc,
		TokenValidator: tokenSvc,
		DepositAddress: depositAddress,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Mock.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
