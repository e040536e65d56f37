package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/solana-devtools/sol-refill/pkg/utils"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port     string
	LogLevel string
	LogFile  string
	Network  string

	// Target account
	TargetAddress string

	// Upstream endpoints
	RPCURL    string
	FaucetURL string

	// Funding amounts (human-readable SOL)
	RequestAmountSOL float64
	AirdropCapSOL    float64

	// Session limiting
	MaxRequestsPerSession int

	// Schedules
	RequestInterval time.Duration
	ResetInterval   time.Duration

	// Timeouts and delays
	HTTPTimeout  time.Duration
	RecheckDelay time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	config := &Config{
		// Server defaults
		Port:     getEnv("PORT", "10000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "sol-refill.log"),
		Network:  getEnv("NETWORK", "devnet"),

		// Target account (required)
		TargetAddress: getEnv("TARGET_ADDRESS", ""),

		// Upstream endpoints - devnet defaults
		RPCURL:    getEnv("RPC_URL", "https://api.devnet.solana.com"),
		FaucetURL: getEnv("FAUCET_URL", "https://faucet.solana.com/api/request"),

		// Amounts
		RequestAmountSOL: getEnvAsFloat("REQUEST_AMOUNT_SOL", 5),
		AirdropCapSOL:    getEnvAsFloat("AIRDROP_CAP_SOL", 2),

		// Session limiting: 8h request interval vs 24h reset gives three
		// possible attempts per window, capped conservatively at 2
		MaxRequestsPerSession: getEnvAsInt("MAX_REQUESTS_PER_SESSION", 2),

		// Schedules
		RequestInterval: time.Duration(getEnvAsInt("REQUEST_INTERVAL_HOURS", 8)) * time.Hour,
		ResetInterval:   time.Duration(getEnvAsInt("RESET_INTERVAL_HOURS", 24)) * time.Hour,

		// Timeouts
		HTTPTimeout:  time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		RecheckDelay: time.Duration(getEnvAsInt("RECHECK_DELAY_SECONDS", 5)) * time.Second,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if all required configuration is present and well-formed
func (c *Config) Validate() error {
	if c.TargetAddress == "" {
		return fmt.Errorf("TARGET_ADDRESS is required")
	}
	if err := utils.ValidateSolanaAddress(c.TargetAddress); err != nil {
		return fmt.Errorf("TARGET_ADDRESS is invalid: %w", err)
	}
	if c.RPCURL == "" {
		return fmt.Errorf("RPC_URL is required")
	}
	if c.FaucetURL == "" {
		return fmt.Errorf("FAUCET_URL is required")
	}
	if c.RequestAmountSOL <= 0 {
		return fmt.Errorf("REQUEST_AMOUNT_SOL must be positive")
	}
	if c.AirdropCapSOL <= 0 {
		return fmt.Errorf("AIRDROP_CAP_SOL must be positive")
	}
	if c.MaxRequestsPerSession < 1 {
		return fmt.Errorf("MAX_REQUESTS_PER_SESSION must be at least 1")
	}
	return nil
}

// GetExplorerURL returns the block explorer URL for a transaction signature
func (c *Config) GetExplorerURL(signature string) string {
	if c.Network == "mainnet" {
		return fmt.Sprintf("https://explorer.solana.com/tx/%s", signature)
	}
	return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", signature, c.Network)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
