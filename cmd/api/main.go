package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-indexer/config"
	httpHandler "wallet-indexer/internal/adapter/http/handler"
	pgStorage "wallet-indexer/internal/adapter/storage/postgres"
	redisStorage "wallet-indexer/internal/adapter/storage/redis"
	"wallet-indexer/internal/core/ports"
	"wallet-indexer/internal/service"
	"wallet-indexer/pkg/logger"
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
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network", cfg.Wallet.Network).
		Msg("Starting Wallet Indexer")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	addressRepo := pgStorage.NewAddressRepo(pool)
	utxoRepo := pgStorage.NewUTXORepo(pool)
	addrBalanceRepo := pgStorage.NewAddressBalanceRepo(pool)
	walletBalanceRepo := pgStorage.NewWalletBalanceRepo(pool)
	historyRepo := pgStorage.NewTxHistoryRepo(pool)
	tokenRepo := pgStorage.NewTokenRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	appliedCache := redisStorage.NewAppliedTxCache(rdb)

	// Initialize core services
	derivationSvc, err := service.NewHDDerivationService(cfg.Wallet.Network)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize derivation service")
	}
	gapScanner := service.NewGapScannerService(derivationSvc, addressRepo, walletRepo, log)

	// Initialize business services
	unlockSvc := service.NewUnlockService(utxoRepo, addressRepo, addrBalanceRepo, walletBalanceRepo, log)
	ledgerSvc := service.NewLedgerService(
		transactor,
		utxoRepo,
		addressRepo,
		addrBalanceRepo,
		walletBalanceRepo,
		historyRepo,
		tokenRepo,
		appliedCache,
		cfg.Wallet.RewardSpendMinBlocks,
		log,
	)
	reorgSvc := service.NewReorgService(
		utxoRepo,
		addressRepo,
		addrBalanceRepo,
		walletBalanceRepo,
		historyRepo,
		tokenRepo,
		appliedCache,
		log,
	)
	walletSvc := service.NewWalletService(
		walletRepo,
		addressRepo,
		walletBalanceRepo,
		historyRepo,
		derivationSvc,
		gapScanner,
		unlockSvc,
		cfg.Wallet.MaxLoadRetries,
		log,
	)
	utxoSvc := service.NewUTXOService(utxoRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		UTXOSvc:        utxoSvc,
		LedgerSvc:      ledgerSvc,
		UnlockSvc:      unlockSvc,
		ReorgSvc:       reorgSvc,
		DefaultMaxGap:  cfg.Wallet.MaxGap,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Periodic unlock pass for time-locked outputs. Height locks mature on
	// the block ingestion path, so the ticker passes height 0.
	unlockCtx, stopUnlock := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(cfg.Unlock.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-unlockCtx.Done():
				return
			case <-ticker.C:
				if err := unlockSvc.UnlockMatured(unlockCtx, time.Now(), 0); err != nil {
					log.Error().Err(err).Msg("Unlock pass failed")
				}
			}
		}
	}()

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
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
	stopUnlock()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
