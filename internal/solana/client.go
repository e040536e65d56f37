package solana

import (
	"context"
	"fmt"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/solana-devtools/sol-refill/internal/models"
)

const (
	confirmPollInterval = 2 * time.Second
	confirmTimeout      = 60 * time.Second
)

// Client handles Solana RPC interactions: balance reads for the target
// address and direct airdrops used as the fallback funding method.
type Client struct {
	provider *rpc.Client
	target   solanago.PublicKey
}

// NewClient creates a new Solana RPC client bound to a target address
func NewClient(rpcURL, targetAddress string) (*Client, error) {
	target, err := solanago.PublicKeyFromBase58(targetAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid target address: %w", err)
	}

	return &Client{
		provider: rpc.New(rpcURL),
		target:   target,
	}, nil
}

// Balance returns the target address balance in lamports. It never returns
// an error: any transport or parse failure yields ok=false and callers must
// treat the balance as informational only.
func (c *Client) Balance(ctx context.Context) (uint64, bool) {
	out, err := c.provider.GetBalance(ctx, c.target, rpc.CommitmentFinalized)
	if err != nil || out == nil {
		return 0, false
	}
	return out.Value, true
}

// Method identifies this client in orchestration outcomes
func (c *Client) Method() string {
	return models.MethodAirdrop
}

// Fund requests a direct airdrop for the address and waits for the transfer
// to reach confirmed commitment before reporting success.
func (c *Client) Fund(ctx context.Context, address string, amountSOL float64) models.FundingResult {
	recipient, err := solanago.PublicKeyFromBase58(address)
	if err != nil {
		return models.FundingResult{Detail: fmt.Sprintf("invalid recipient address: %v", err)}
	}

	sig, err := c.provider.RequestAirdrop(ctx, recipient, SOLToLamports(amountSOL), rpc.CommitmentConfirmed)
	if err != nil {
		return models.FundingResult{Detail: fmt.Sprintf("airdrop request failed: %v", err)}
	}

	if err := c.waitForConfirmation(ctx, sig); err != nil {
		return models.FundingResult{Detail: fmt.Sprintf("airdrop %s not confirmed: %v", sig, err)}
	}

	return models.FundingResult{
		Success:   true,
		Signature: sig.String(),
	}
}

// waitForConfirmation polls signature status until the transaction reaches
// confirmed (or finalized) commitment, the transaction is rejected, or the
// confirmation window runs out.
func (c *Client) waitForConfirmation(ctx context.Context, sig solanago.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			out, err := c.provider.GetSignatureStatuses(ctx, true, sig)
			if err != nil || out == nil || len(out.Value) == 0 || out.Value[0] == nil {
				continue
			}

			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction rejected: %v", status.Err)
			}

			switch status.ConfirmationStatus {
			case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
				return nil
			}
		}
	}
}

// SOLToLamports converts a human-readable SOL amount to lamports (10^9)
func SOLToLamports(amount float64) uint64 {
	return uint64(amount * float64(solanago.LAMPORTS_PER_SOL))
}

// LamportsToSOL converts lamports to a human-readable SOL amount
func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / float64(solanago.LAMPORTS_PER_SOL)
}

// FormatSOL renders a lamport balance as a SOL string for responses and logs
func FormatSOL(lamports uint64) string {
	return fmt.Sprintf("%.4f", LamportsToSOL(lamports))
}
