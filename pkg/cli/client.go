package cli

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/solana-devtools/sol-refill/internal/models"
)

// APIClient handles communication with the sol-refill service
type APIClient struct {
	baseURL string
	client  *resty.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	client := resty.New()
	client.SetTimeout(2 * time.Minute) // a cycle may wait on airdrop confirmation
	client.SetHeader("Content-Type", "application/json")

	return &APIClient{
		baseURL: baseURL,
		client:  client,
	}
}

// RequestFunds runs one orchestration cycle on the service. A 400 or 429
// still carries an outcome body, so those are returned rather than treated
// as transport errors.
func (c *APIClient) RequestFunds() (*models.Outcome, error) {
	var outcome models.Outcome

	resp, err := c.client.R().
		SetResult(&outcome).
		SetError(&outcome).
		Post(fmt.Sprintf("%s/request", c.baseURL))

	if err != nil {
		return nil, fmt.Errorf("failed to request funds: %w", err)
	}

	if resp.IsError() && outcome.RequestID == "" {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &outcome, nil
}

// GetStatus fetches the overall service status
func (c *APIClient) GetStatus() (*models.StatusResponse, error) {
	var response models.StatusResponse
	var errResponse models.ErrorResponse

	resp, err := c.client.R().
		SetResult(&response).
		SetError(&errResponse).
		Get(c.baseURL + "/")

	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	if resp.IsError() {
		if errResponse.Error != "" {
			return nil, fmt.Errorf("API error: %s", errResponse.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &response, nil
}

// GetBalance fetches the target address balance
func (c *APIClient) GetBalance() (*models.BalanceResponse, error) {
	var response models.BalanceResponse
	var errResponse models.ErrorResponse

	resp, err := c.client.R().
		SetResult(&response).
		SetError(&errResponse).
		Get(fmt.Sprintf("%s/balance", c.baseURL))

	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	if resp.IsError() {
		if errResponse.Error != "" {
			return nil, fmt.Errorf("API error: %s", errResponse.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &response, nil
}

// GetStats fetches the accumulated statistics
func (c *APIClient) GetStats() (*models.StatsSnapshot, error) {
	var response models.StatsSnapshot
	var errResponse models.ErrorResponse

	resp, err := c.client.R().
		SetResult(&response).
		SetError(&errResponse).
		Get(fmt.Sprintf("%s/stats", c.baseURL))

	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	if resp.IsError() {
		if errResponse.Error != "" {
			return nil, fmt.Errorf("API error: %s", errResponse.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &response, nil
}
