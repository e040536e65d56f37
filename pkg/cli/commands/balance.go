package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solana-devtools/sol-refill/pkg/cli"
	"github.com/solana-devtools/sol-refill/pkg/cli/ui"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the target address balance",
	Long: `Look up the current devnet balance of the target address. The
read is best-effort: "unknown" means the RPC endpoint could not be reached.

Example:
  sol-refill balance`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	client := cli.NewAPIClient(apiURL)

	resp, err := client.GetBalance()
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	if jsonOut {
		jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(jsonBytes))
	} else {
		ui.PrintBalance(resp)
	}

	return nil
}
