// Package main is the entry point for the statgen service and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statgen/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "statgen",
	Short: "RPG ability score generator",
	Long: `statgen generates the six ability scores of a new character with one of three
methods (priority, hardcore or best three of four) and serves them over gRPC.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
