package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solana-devtools/sol-refill/pkg/cli"
	"github.com/solana-devtools/sol-refill/pkg/cli/ui"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Run one funding cycle",
	Long: `Synchronously run one funding cycle on the service: web faucet
first, direct airdrop fallback on failure.

A cycle can also come back "skipped" when the session request limit has
been reached; that is not counted as a failure.

Example:
  sol-refill request`,
	Args: cobra.NoArgs,
	RunE: runRequest,
}

func runRequest(cmd *cobra.Command, args []string) error {
	client := cli.NewAPIClient(apiURL)

	if jsonOut {
		outcome, err := client.RequestFunds()
		if err != nil {
			return err
		}
		jsonBytes, _ := json.MarshalIndent(outcome, "", "  ")
		fmt.Println(string(jsonBytes))
		return nil
	}

	ui.PrintBanner()
	ui.PrintInfo("Requesting devnet SOL...")

	s := ui.NewSpinner("Running funding cycle (may wait on confirmation)...")
	s.Start()
	outcome, err := client.RequestFunds()
	s.Stop()

	if err != nil {
		ui.PrintError(fmt.Sprintf("Request failed: %v", err))
		return err
	}

	ui.PrintOutcome(outcome)

	if !outcome.Success && !outcome.Skipped {
		return fmt.Errorf("funding cycle failed: %s", outcome.Error)
	}
	return nil
}
