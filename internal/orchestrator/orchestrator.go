package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solana-devtools/sol-refill/internal/models"
	"github.com/solana-devtools/sol-refill/internal/session"
	"github.com/solana-devtools/sol-refill/internal/solana"
	"github.com/solana-devtools/sol-refill/internal/stats"
)

// Funder is a single funding strategy. Implementations wrap one upstream
// call and convert every failure mode into a FundingResult.
type Funder interface {
	Method() string
	Fund(ctx context.Context, address string, amountSOL float64) models.FundingResult
}

// BalanceReader reads the target balance best-effort
type BalanceReader interface {
	Balance(ctx context.Context) (lamports uint64, ok bool)
}

// attempt pairs a funding strategy with the amount it will be asked for
type attempt struct {
	funder Funder
	amount float64
}

// Orchestrator runs the request-with-fallback workflow: gate on the session
// limiter, try each funding strategy in order, keep the statistics honest,
// and schedule the observability-only balance re-check. No error escapes
// RunRequest; every lower-level failure lands in the outcome.
type Orchestrator struct {
	logger       *zap.Logger
	reader       BalanceReader
	attempts     []attempt
	limiter      *session.Limiter
	stats        *stats.Stats
	address      string
	recheckDelay time.Duration
}

// New builds an orchestrator. The fallback amount is clamped to capSOL since
// direct airdrops are rate-capped lower than the faucet API.
func New(
	logger *zap.Logger,
	reader BalanceReader,
	faucet Funder,
	airdrop Funder,
	limiter *session.Limiter,
	st *stats.Stats,
	address string,
	amountSOL, capSOL float64,
	recheckDelay time.Duration,
) *Orchestrator {
	fallbackAmount := amountSOL
	if fallbackAmount > capSOL {
		fallbackAmount = capSOL
	}

	return &Orchestrator{
		logger: logger,
		reader: reader,
		attempts: []attempt{
			{funder: faucet, amount: amountSOL},
			{funder: airdrop, amount: fallbackAmount},
		},
		limiter:      limiter,
		stats:        st,
		address:      address,
		recheckDelay: recheckDelay,
	}
}

// RunRequest executes one orchestration cycle and returns its outcome
func (o *Orchestrator) RunRequest(ctx context.Context) models.Outcome {
	outcome := models.Outcome{
		RequestID:     uuid.NewString(),
		RequestedAt:   time.Now().UTC(),
		BalanceBefore: models.BalanceUnknown,
	}

	log := o.logger.With(zap.String("request_id", outcome.RequestID))

	if !o.limiter.CanRequest() {
		used, limit := o.limiter.Usage()
		outcome.Skipped = true
		log.Info("session limit reached, skipping cycle",
			zap.Int("used", used),
			zap.Int("limit", limit),
		)
		return outcome
	}

	// Attempts consume a slot whether or not they end up succeeding
	o.limiter.RecordAttempt()
	o.stats.RecordAttempt()

	if lamports, ok := o.reader.Balance(ctx); ok {
		outcome.BalanceBefore = solana.FormatSOL(lamports)
	} else {
		log.Warn("balance read failed, continuing with unknown balance",
			zap.String("address", o.address),
		)
	}

	var lastFailure models.FundingResult
	for _, att := range o.attempts {
		log.Info("requesting funds",
			zap.String("method", att.funder.Method()),
			zap.String("address", o.address),
			zap.Float64("amount_sol", att.amount),
		)

		result := att.funder.Fund(ctx, o.address, att.amount)
		if result.Success {
			outcome.Success = true
			outcome.Method = att.funder.Method()
			outcome.Signature = result.Signature
			o.stats.RecordSuccess()

			log.Info("funds received",
				zap.String("method", outcome.Method),
				zap.String("signature", outcome.Signature),
				zap.String("balance_before", outcome.BalanceBefore),
			)

			go o.recheckBalance(outcome.RequestID)
			return outcome
		}

		lastFailure = result
		log.Warn("funding method failed",
			zap.String("method", att.funder.Method()),
			zap.Float64("amount_sol", att.amount),
			zap.String("detail", result.Detail),
		)
	}

	// Last attempted method's detail wins
	o.stats.RecordFailure()
	outcome.Error = lastFailure.Detail

	log.Error("all funding methods failed",
		zap.String("address", o.address),
		zap.String("detail", outcome.Error),
	)

	return outcome
}

// recheckBalance logs the balance a short while after a successful request.
// Fire-and-forget: its failure is swallowed and only logged, and it never
// affects the already-returned outcome.
func (o *Orchestrator) recheckBalance(requestID string) {
	time.Sleep(o.recheckDelay)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if lamports, ok := o.reader.Balance(ctx); ok {
		o.logger.Info("post-funding balance",
			zap.String("request_id", requestID),
			zap.String("balance_sol", solana.FormatSOL(lamports)),
		)
		return
	}

	o.logger.Warn("post-funding balance check failed",
		zap.String("request_id", requestID),
	)
}
