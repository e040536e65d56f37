package utils

import (
	"fmt"
	"regexp"

	"github.com/mr-tron/base58"
)

var (
	// Solana address regex: 32-44 characters from the base58 alphabet
	solanaAddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
)

// ValidateSolanaAddress validates a Solana address format. A valid address
// is base58 text that decodes to exactly 32 bytes (an ed25519 public key).
func ValidateSolanaAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if !solanaAddressRegex.MatchString(address) {
		return fmt.Errorf("invalid Solana address format")
	}

	decoded, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("invalid base58 encoding: %w", err)
	}

	if len(decoded) != 32 {
		return fmt.Errorf("address must decode to 32 bytes, got %d", len(decoded))
	}

	return nil
}

// ShortenAddress abbreviates an address or signature for display
func ShortenAddress(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:8] + "..." + s[len(s)-6:]
}
