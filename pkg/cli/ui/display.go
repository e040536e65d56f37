package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/solana-devtools/sol-refill/internal/models"
	"github.com/solana-devtools/sol-refill/pkg/utils"
)

var (
	// Colors
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()

	// Symbols
	checkMark = green("✓")
	xMark     = red("✗")
	arrow     = cyan("→")
)

// PrintBanner prints the tool banner
func PrintBanner() {
	banner := `
   ███████╗ ██████╗ ██╗      ██████╗ ███████╗███████╗██╗██╗     ██╗
   ██╔════╝██╔═══██╗██║      ██╔══██╗██╔════╝██╔════╝██║██║     ██║
   ███████╗██║   ██║██║█████╗██████╔╝█████╗  █████╗  ██║██║     ██║
   ╚════██║██║   ██║██║╚════╝██╔══██╗██╔══╝  ██╔══╝  ██║██║     ██║
   ███████║╚██████╔╝███████╗ ██║  ██║███████╗██║     ██║███████╗███████╗
   ╚══════╝ ╚═════╝ ╚══════╝ ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚══════╝╚══════╝

                       Devnet SOL, topped up automatically
`
	fmt.Println(cyan(banner))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", checkMark, message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("%s %s\n", xMark, red(message))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", arrow, message)
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Color("cyan")
	return s
}

// PrintOutcome prints a nicely formatted orchestration outcome
func PrintOutcome(outcome *models.Outcome) {
	fmt.Println()
	fmt.Println(strings.Repeat("━", 50))

	switch {
	case outcome.Skipped:
		fmt.Printf("  %s %s\n", yellow("⏭"), "Skipped: session request limit reached")
	case outcome.Success:
		fmt.Printf("  %s  %s\n", bold("Method:"), outcome.Method)
		fmt.Printf("  %s  %s\n", bold("Signature:"), utils.ShortenAddress(outcome.Signature))
		fmt.Printf("  %s  %s SOL\n", bold("Balance before:"), outcome.BalanceBefore)
		if outcome.ExplorerURL != "" {
			fmt.Println()
			fmt.Printf("  🔗 %s\n", cyan(outcome.ExplorerURL))
		}
	default:
		fmt.Printf("  %s  %s\n", bold("Failed:"), red(outcome.Error))
		fmt.Printf("  %s  %s SOL\n", bold("Balance before:"), outcome.BalanceBefore)
	}

	fmt.Println(strings.Repeat("━", 50))
	fmt.Println()

	if outcome.Success {
		PrintSuccess("Funds should arrive within a few seconds.")
		fmt.Println()
	}
}

// PrintStatus prints the service status
func PrintStatus(resp *models.StatusResponse) {
	fmt.Println()
	fmt.Println(bold("Service Status"))
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println()

	fmt.Printf("%s %s (%s)\n", bold("Service:"), resp.Service, resp.Network)
	fmt.Printf("%s %s\n", bold("Address:"), utils.ShortenAddress(resp.Address))
	fmt.Printf("%s %s SOL\n", bold("Balance:"), resp.Balance)
	fmt.Printf("%s %d/%d this session\n", bold("Requests:"), resp.SessionUsed, resp.SessionLimit)
	fmt.Println()

	PrintStats(&resp.Stats)
}

// PrintBalance prints a balance response
func PrintBalance(resp *models.BalanceResponse) {
	fmt.Println()
	fmt.Printf("%s %s\n", bold("Address:"), utils.ShortenAddress(resp.Address))
	if resp.Balance == models.BalanceUnknown {
		PrintError("Balance currently unavailable")
	} else {
		fmt.Printf("%s %s SOL (%d lamports)\n", bold("Balance:"), resp.Balance, resp.Lamports)
	}
	fmt.Println()
}

// PrintStats prints accumulated statistics
func PrintStats(snap *models.StatsSnapshot) {
	fmt.Println(bold("Statistics"))
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println()

	fmt.Printf("  Total requests:      %d\n", snap.TotalRequests)
	fmt.Printf("  Successful:          %d\n", snap.SuccessfulRequests)
	fmt.Printf("  Failed:              %d\n", snap.FailedRequests)
	fmt.Printf("  Success rate:        %s\n", snap.SuccessRate)
	if snap.LastRequestTime != nil {
		fmt.Printf("  Last request:        %s\n", snap.LastRequestTime.Format("January 02, 2006 at 3:04 PM"))
	}
	if snap.LastSuccessTime != nil {
		fmt.Printf("  Last success:        %s\n", snap.LastSuccessTime.Format("January 02, 2006 at 3:04 PM"))
	}
	fmt.Printf("  Uptime:              %s\n", formatUptime(snap.UptimeSeconds))
	fmt.Println()
}

func formatUptime(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	if d >= 24*time.Hour {
		days := int(d.Hours() / 24)
		hours := int(d.Hours()) % 24
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
