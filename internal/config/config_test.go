package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:                  "10000",
		LogLevel:              "info",
		Network:               "devnet",
		TargetAddress:         "So11111111111111111111111111111111111111112",
		RPCURL:                "https://api.devnet.solana.com",
		FaucetURL:             "https://faucet.solana.com/api/request",
		RequestAmountSOL:      5,
		AirdropCapSOL:         2,
		MaxRequestsPerSession: 2,
		RequestInterval:       8 * time.Hour,
		ResetInterval:         24 * time.Hour,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing target address",
			mutate:  func(c *Config) { c.TargetAddress = "" },
			wantErr: "TARGET_ADDRESS is required",
		},
		{
			name:    "malformed target address",
			mutate:  func(c *Config) { c.TargetAddress = "0x0742d469482a89e7" },
			wantErr: "TARGET_ADDRESS is invalid",
		},
		{
			name:    "missing rpc url",
			mutate:  func(c *Config) { c.RPCURL = "" },
			wantErr: "RPC_URL is required",
		},
		{
			name:    "missing faucet url",
			mutate:  func(c *Config) { c.FaucetURL = "" },
			wantErr: "FAUCET_URL is required",
		},
		{
			name:    "zero request amount",
			mutate:  func(c *Config) { c.RequestAmountSOL = 0 },
			wantErr: "REQUEST_AMOUNT_SOL must be positive",
		},
		{
			name:    "zero airdrop cap",
			mutate:  func(c *Config) { c.AirdropCapSOL = 0 },
			wantErr: "AIRDROP_CAP_SOL must be positive",
		},
		{
			name:    "negative airdrop cap",
			mutate:  func(c *Config) { c.AirdropCapSOL = -1 },
			wantErr: "AIRDROP_CAP_SOL must be positive",
		},
		{
			name:    "zero session limit",
			mutate:  func(c *Config) { c.MaxRequestsPerSession = 0 },
			wantErr: "MAX_REQUESTS_PER_SESSION must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestGetExplorerURL(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t,
		"https://explorer.solana.com/tx/5J7abc?cluster=devnet",
		cfg.GetExplorerURL("5J7abc"),
	)

	cfg.Network = "mainnet"
	assert.Equal(t,
		"https://explorer.solana.com/tx/5J7abc",
		cfg.GetExplorerURL("5J7abc"),
	)
}
