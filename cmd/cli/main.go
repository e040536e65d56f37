package main

import "github.com/solana-devtools/sol-refill/pkg/cli/commands"

func main() {
	commands.Execute()
}
