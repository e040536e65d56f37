package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/solana-devtools/sol-refill/internal/config"
	"github.com/solana-devtools/sol-refill/internal/models"
	"github.com/solana-devtools/sol-refill/internal/session"
	"github.com/solana-devtools/sol-refill/internal/solana"
	"github.com/solana-devtools/sol-refill/internal/stats"
)

// Runner executes one orchestration cycle
type Runner interface {
	RunRequest(ctx context.Context) models.Outcome
}

// BalanceReader reads the target balance best-effort
type BalanceReader interface {
	Balance(ctx context.Context) (lamports uint64, ok bool)
}

// Handler contains dependencies for API handlers
type Handler struct {
	config  *config.Config
	logger  *zap.Logger
	runner  Runner
	reader  BalanceReader
	limiter *session.Limiter
	stats   *stats.Stats
}

// NewHandler creates a new API handler
func NewHandler(
	cfg *config.Config,
	logger *zap.Logger,
	runner Runner,
	reader BalanceReader,
	limiter *session.Limiter,
	st *stats.Stats,
) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		runner:  runner,
		reader:  reader,
		limiter: limiter,
		stats:   st,
	}
}

// GetStatus returns overall service status: best-effort balance plus the
// accumulated statistics
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	used, limit := h.limiter.Usage()

	response := models.StatusResponse{
		Service:      "sol-refill",
		Network:      h.config.Network,
		Address:      h.config.TargetAddress,
		Balance:      models.BalanceUnknown,
		SessionUsed:  used,
		SessionLimit: limit,
		Stats:        h.stats.Snapshot(),
	}

	if lamports, ok := h.reader.Balance(c.Context()); ok {
		response.Balance = solana.FormatSOL(lamports)
	}

	return c.JSON(response)
}

// RequestFunds synchronously runs one orchestration cycle
func (h *Handler) RequestFunds(c *fiber.Ctx) error {
	outcome := h.runner.RunRequest(c.Context())

	if outcome.Skipped {
		return c.Status(fiber.StatusTooManyRequests).JSON(outcome)
	}
	if !outcome.Success {
		return c.Status(fiber.StatusBadRequest).JSON(outcome)
	}

	outcome.ExplorerURL = h.config.GetExplorerURL(outcome.Signature)
	return c.JSON(outcome)
}

// GetBalance returns the current balance lookup only
func (h *Handler) GetBalance(c *fiber.Ctx) error {
	response := models.BalanceResponse{
		Address: h.config.TargetAddress,
		Balance: models.BalanceUnknown,
	}

	if lamports, ok := h.reader.Balance(c.Context()); ok {
		response.Balance = solana.FormatSOL(lamports)
		response.Lamports = lamports
	} else {
		h.logger.Warn("balance lookup failed",
			zap.String("address", h.config.TargetAddress),
		)
	}

	return c.JSON(response)
}

// GetStats returns statistics only, including the derived success rate
func (h *Handler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.stats.Snapshot())
}

// Health returns the liveness status plus process uptime
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:        "ok",
		UptimeSeconds: h.stats.Uptime().Seconds(),
		Timestamp:     time.Now().Unix(),
	})
}
