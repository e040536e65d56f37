package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

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

	logger.Info("Starting sol-refill scheduler",
		zap.String("network", cfg.Network),
		zap.String("address", cfg.TargetAddress),
		zap.Duration("request_interval", cfg.RequestInterval),
		zap.Duration("reset_interval", cfg.ResetInterval),
	)

	// Initialize Solana RPC client (chain reads + airdrop fallback)
	chainClient, err := solana.NewClient(cfg.RPCURL, cfg.TargetAddress)
	if err != nil {
		logger.Fatal("Failed to create Solana client", zap.Error(err))
	}

	// Initialize faucet client
	faucetClient := faucet.NewClient(cfg.FaucetURL, cfg.Network, cfg.HTTPTimeout)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Immediate request at startup, then on the fixed interval
	requestSchedule := scheduler.New(cfg.RequestInterval, func() {
		outcome := orch.RunRequest(ctx)
		if outcome.Success {
			outcome.ExplorerURL = cfg.GetExplorerURL(outcome.Signature)
		}
		snap := st.Snapshot()
		logger.Info("cycle complete",
			zap.String("request_id", outcome.RequestID),
			zap.Bool("success", outcome.Success),
			zap.Bool("skipped", outcome.Skipped),
			zap.String("method", outcome.Method),
			zap.String("explorer_url", outcome.ExplorerURL),
			zap.String("success_rate", snap.SuccessRate),
		)
	}, true)

	// Daily session reset, decoupled from request activity
	resetSchedule := scheduler.New(cfg.ResetInterval, func() {
		limiter.Reset()
		logger.Info("session counter reset")
	}, false)

	go requestSchedule.Run(ctx)
	go resetSchedule.Run(ctx)

	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
