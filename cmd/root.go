// =============================================================================
// Raffle Ticket Generator - Root Command
// =============================================================================
//
// The root command carries the global flags and the command registry:
//
//   raffle
//   ├── generate  (raffle generate [input] [output])
//   ├── missing   (raffle missing [input] [output])
//   ├── validate  (raffle validate)
//   └── version   (raffle version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file, overridable with
// --config.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "raffle",
	Short: "Raffle ticket generator - expand POS exports into raffle tickets",
	Long: `Raffle ticket generator turns a point-of-sale items export into raffle
tickets: each qualifying line item becomes one output row per ticket earned,
carrying a fresh random ticket id alongside the customer and transaction
fields needed for the draw.

Promotions are configuration, not code: each YAML file under configs/ names
the qualifying categories and products, the ticket computation (per-unit
multiplier or price-per-ticket), and the column layout of the export.

Example Usage:
  raffle generate                          # default promotion, discovered input
  raffle generate items.csv tickets.csv    # explicit input and output
  raffle generate --promotion autumn2025   # pick a promotion
  raffle missing                           # report entries missing a customer id
  raffle validate                          # check configuration only`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
