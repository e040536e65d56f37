package faucet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/solana-devtools/sol-refill/internal/models"
	"github.com/solana-devtools/sol-refill/internal/solana"
)

// Client requests devnet SOL from the public web faucet API
type Client struct {
	endpoint string
	network  string
	client   *resty.Client
}

// NewClient creates a new faucet API client
func NewClient(endpoint, network string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		endpoint: endpoint,
		network:  network,
		client:   client,
	}
}

// Method identifies this client in orchestration outcomes
func (c *Client) Method() string {
	return models.MethodFaucet
}

// Fund issues a single funding request to the faucet API. The amount is sent
// in lamports. Success means the response carried a transaction signature;
// everything else is a failure with the upstream detail preserved. Retry
// policy lives in the orchestrator via the airdrop fallback, not here.
func (c *Client) Fund(ctx context.Context, address string, amountSOL float64) models.FundingResult {
	req := models.FaucetRequest{
		WalletAddress: address,
		Lamports:      solana.SOLToLamports(amountSOL),
		Network:       c.network,
	}

	var body models.FaucetAPIResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post(c.endpoint)

	if err != nil {
		return models.FundingResult{Detail: fmt.Sprintf("faucet request failed: %v", err)}
	}

	if resp.IsError() {
		return models.FundingResult{
			Detail: fmt.Sprintf("faucet returned status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body()))),
		}
	}

	if body.Signature == "" {
		detail := body.Error
		if detail == "" {
			detail = body.Message
		}
		if detail == "" {
			detail = "faucet response missing transaction signature"
		}
		return models.FundingResult{Detail: detail}
	}

	return models.FundingResult{
		Success:   true,
		Signature: body.Signature,
	}
}
