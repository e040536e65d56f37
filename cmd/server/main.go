package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/solana-devtools/sol-refill/internal/api"
	"github.com/solana-devtools/sol-refill/internal/config"
	"github.com/solana-devtools/sol-refill/internal/faucet"
	"github.com/solana-devtools/sol-refill/internal/orchestrator"
	"github.com/solana-devtools/sol-refill/internal/scheduler"
	"github.com/solana-devtools/sol-refill/internal/session"
	"github.com/solana-devtools/sol-refill/internal/solana"
	"github.com/solana-devtools/sol-refill/internal/stats"
	"github.com/solana-devtools/sol-refill/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting sol-refill server",
		zap.String("network", cfg.Network),
		zap.String("address", cfg.TargetAddress),
		zap.String("port", cfg.Port),
	)

	// Initialize Solana RPC client (chain reads + airdrop fallback)
	chainClient, err := solana.NewClient(cfg.RPCURL, cfg.TargetAddress)
	if err != nil {
		logger.Fatal("Failed to create Solana client", zap.Error(err))
	}
	logger.Info("Solana client initialized", zap.String("rpc_url", cfg.RPCURL))

	// Initialize faucet client
	faucetClient := faucet.NewClient(cfg.FaucetURL, cfg.Network, cfg.HTTPTimeout)
	logger.Info("Faucet client initialized", zap.String("faucet_url", cfg.FaucetURL))

	// Session state and statistics
	limiter := session.NewLimiter(cfg.MaxRequestsPerSession)
	st := stats.New()

	// Request orchestrator
	orch := orchestrator.New(
		logger,
		chainClient,
		faucetClient,
		chainClient,
		limiter,
		st,
		cfg.TargetAddress,
		cfg.RequestAmountSOL,
		cfg.AirdropCapSOL,
		cfg.RecheckDelay,
	)

	// Daily session reset, independent of inbound request activity
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resetSchedule := scheduler.New(cfg.ResetInterval, func() {
		limiter.Reset()
		logger.Info("session counter reset")
	}, false)
	go resetSchedule.Run(ctx)

	// Create API handler
	handler := api.NewHandler(cfg, logger, orch, chainClient, limiter, st)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "sol-refill API",
		DisableStartupMessage: false,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Setup routes
	api.SetupRoutes(app, handler)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("Server starting", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
