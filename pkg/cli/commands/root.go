package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	verbose bool
	jsonOut bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sol-refill",
	Short: "Devnet SOL top-up CLI",
	Long: `A CLI tool to drive a sol-refill service keeping a fixed devnet
address funded.

Examples:
  sol-refill request              # Run one funding cycle now
  sol-refill status               # Service status, balance and statistics
  sol-refill balance              # Balance lookup only
  sol-refill stats                # Statistics only

The service tries the web faucet first and falls back to a direct RPC
airdrop (capped at 2 SOL). Requests are limited per session; the session
resets once a day.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:10000", "sol-refill service URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(statsCmd)
}
