package handler

import (
	"wallet-indexer/internal/adapter/http/middleware"
	"wallet-indexer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	UTXOSvc        ports.UTXOService
	LedgerSvc      ports.LedgerService
	UnlockSvc      ports.UnlockService
	ReorgSvc       ports.ReorgService
	DefaultMaxGap  int
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.DefaultMaxGap)
	wallet := v1.Group("/wallet")
	{
		wallet.POST("", walletHandler.LoadWallet)
		wallet.GET("/:walletId", walletHandler.GetWallet)
		wallet.GET("/:walletId/balances", walletHandler.GetBalances)
		wallet.GET("/:walletId/history", walletHandler.GetHistory)
		wallet.GET("/:walletId/addresses", walletHandler.GetAddresses)
		wallet.GET("/:walletId/addresses/new", walletHandler.GetNewAddresses)
	}

	utxoHandler := NewUTXOHandler(deps.UTXOSvc)
	utxos := v1.Group("/utxos")
	{
		utxos.POST("/filter", utxoHandler.FilterUTXOs)
		utxos.POST("/reserve", utxoHandler.ReserveUTXOs)
		utxos.POST("/release", utxoHandler.ReleaseProposals)
	}

	// Ingestion and maintenance endpoints; callers are the sync daemon and
	// cron jobs, not end users.
	eventHandler := NewEventHandler(deps.LedgerSvc, deps.UnlockSvc, deps.ReorgSvc)
	v1.POST("/events/tx", eventHandler.HandleTxEvent)
	maintenance := v1.Group("/maintenance")
	{
		maintenance.POST("/unlock", eventHandler.Unlock)
		maintenance.POST("/void", eventHandler.Void)
	}

	return r
}
