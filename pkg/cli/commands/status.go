package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solana-devtools/sol-refill/pkg/cli"
	"github.com/solana-devtools/sol-refill/pkg/cli/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service status",
	Long: `Show the service status: target address, current balance,
session usage and accumulated statistics.

Example:
  sol-refill status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := cli.NewAPIClient(apiURL)

	resp, err := client.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if jsonOut {
		jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(jsonBytes))
	} else {
		ui.PrintBanner()
		ui.PrintStatus(resp)
	}

	return nil
}
