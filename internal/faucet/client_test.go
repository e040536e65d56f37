package faucet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solana-devtools/sol-refill/internal/models"
)

const testAddress = "So11111111111111111111111111111111111111112"

func TestFundSuccess(t *testing.T) {
	var received models.FaucetRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.FaucetAPIResponse{Signature: "5J7xKqZkDkWvN3mPa"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "devnet", 5*time.Second)
	result := client.Fund(context.Background(), testAddress, 5)

	assert.True(t, result.Success)
	assert.Equal(t, "5J7xKqZkDkWvN3mPa", result.Signature)
	assert.Empty(t, result.Detail)

	// Amount travels in lamports
	assert.Equal(t, testAddress, received.WalletAddress)
	assert.Equal(t, uint64(5_000_000_000), received.Lamports)
	assert.Equal(t, "devnet", received.Network)
}

func TestFundRemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(models.FaucetAPIResponse{Error: "rate limit exceeded"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "devnet", 5*time.Second)
	result := client.Fund(context.Background(), testAddress, 5)

	assert.False(t, result.Success)
	assert.Empty(t, result.Signature)
	assert.Contains(t, result.Detail, "429")
	assert.Contains(t, result.Detail, "rate limit exceeded")
}

func TestFundMissingSignature(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.FaucetAPIResponse{Message: "request queued"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "devnet", 5*time.Second)
	result := client.Fund(context.Background(), testAddress, 1)

	assert.False(t, result.Success)
	assert.Equal(t, "request queued", result.Detail)
}

func TestFundEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "devnet", 5*time.Second)
	result := client.Fund(context.Background(), testAddress, 1)

	assert.False(t, result.Success)
	assert.Contains(t, result.Detail, "missing transaction signature")
}

func TestFundTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := NewClient(server.URL, "devnet", time.Second)
	result := client.Fund(context.Background(), testAddress, 1)

	assert.False(t, result.Success)
	assert.Contains(t, result.Detail, "faucet request failed")
}

func TestFundTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "devnet", 20*time.Millisecond)
	result := client.Fund(context.Background(), testAddress, 1)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Detail)
}

func TestMethod(t *testing.T) {
	client := NewClient("http://localhost", "devnet", time.Second)
	assert.Equal(t, models.MethodFaucet, client.Method())
}
