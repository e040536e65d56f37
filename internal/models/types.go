package models

import "time"

// Funding methods, in fallback order.
const (
	MethodFaucet  = "faucet"
	MethodAirdrop = "airdrop"
)

// BalanceUnknown is reported whenever the balance read fails. Balance is
// advisory only and never drives a funding decision.
const BalanceUnknown = "unknown"

// FaucetRequest is the payload sent to the web faucet API
type FaucetRequest struct {
	WalletAddress string `json:"walletAddress"`
	Lamports      uint64 `json:"lamports"`
	Network       string `json:"network"`
}

// FaucetAPIResponse is the body returned by the web faucet API
type FaucetAPIResponse struct {
	Signature string `json:"signature,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

// FundingResult is the uniform result produced by every funding client
type FundingResult struct {
	Success   bool   `json:"success"`
	Signature string `json:"signature,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Outcome is the report returned by a single orchestration cycle
type Outcome struct {
	RequestID     string    `json:"request_id"`
	Skipped       bool      `json:"skipped,omitempty"`
	Success       bool      `json:"success"`
	Method        string    `json:"method,omitempty"`
	Signature     string    `json:"signature,omitempty"`
	ExplorerURL   string    `json:"explorer_url,omitempty"`
	BalanceBefore string    `json:"balance_before"`
	Error         string    `json:"error,omitempty"`
	RequestedAt   time.Time `json:"requested_at"`
}

// StatsSnapshot is a point-in-time copy of the accumulated statistics
type StatsSnapshot struct {
	TotalRequests      int64      `json:"total_requests"`
	SuccessfulRequests int64      `json:"successful_requests"`
	FailedRequests     int64      `json:"failed_requests"`
	SuccessRate        string     `json:"success_rate"`
	LastRequestTime    *time.Time `json:"last_request_time,omitempty"`
	LastSuccessTime    *time.Time `json:"last_success_time,omitempty"`
	StartTime          time.Time  `json:"start_time"`
	UptimeSeconds      float64    `json:"uptime_seconds"`
}

// StatusResponse is returned by GET /
type StatusResponse struct {
	Service      string        `json:"service"`
	Network      string        `json:"network"`
	Address      string        `json:"address"`
	Balance      string        `json:"balance"`
	SessionUsed  int           `json:"session_used"`
	SessionLimit int           `json:"session_limit"`
	Stats        StatsSnapshot `json:"stats"`
}

// BalanceResponse is returned by GET /balance
type BalanceResponse struct {
	Address  string `json:"address"`
	Balance  string `json:"balance"`
	Lamports uint64 `json:"lamports,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Timestamp     int64   `json:"timestamp"`
}

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error string `json:"error"`
}
