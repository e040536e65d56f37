package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solana-devtools/sol-refill/pkg/cli"
	"github.com/solana-devtools/sol-refill/pkg/cli/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show request statistics",
	Long: `Show accumulated request statistics including the derived
success rate. Counters reset when the service restarts.

Example:
  sol-refill stats`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	client := cli.NewAPIClient(apiURL)

	resp, err := client.GetStats()
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if jsonOut {
		jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(jsonBytes))
	} else {
		ui.PrintStats(resp)
	}

	return nil
}
