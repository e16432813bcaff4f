// =============================================================================
// Raffle Ticket Generator - Generate Command
// =============================================================================
//
// The main command: read the items export, expand qualifying line items into
// tickets and write the ticket file.
//
// COMMAND USAGE:
//   raffle generate [input] [output] [flags]
//
// Both positionals are optional: without them the input is discovered from
// the configured search paths and the output name comes from the configured
// pattern.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kegworth-pc/raffle-tickets/internal/engine"
	"github.com/kegworth-pc/raffle-tickets/internal/rowsink"
	"github.com/kegworth-pc/raffle-tickets/internal/rowsource"
)

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate [input] [output]",
	Short: "Generate raffle tickets from a POS items export",
	Long: `The generate command reads an items export (CSV or XLSX), applies the
selected promotion's rules and writes one output row per ticket earned.

Each qualifying line item yields its ticket count from the promotion's mode:
quantity times the product's multiplier, or gross sales divided by the ticket
price (plus an optional bonus divisor). Line items whose payment id has been
seen with negative sales are treated as cancelled and suppressed.

A row whose field count disagrees with the header stops the run; rows already
written remain in the output file.`,

	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&promotionName,
		"promotion",
		"",
		"Promotion to process (default from main config)",
	)
}

// runGenerate executes the ticket generation pipeline.
func runGenerate(args []string) error {
	rc, err := prepareRun(args, "") // "" falls back to the configured pattern
	if err != nil {
		return err
	}

	fmt.Println("Processing raffle entries:")
	fmt.Printf("- Promotion:   %s\n", rc.promo.Name)
	fmt.Printf("- Input file:  %s\n", rc.inputPath)
	fmt.Printf("- Output file: %s\n", rc.outputPath)

	src, err := rowsource.Open(rc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer src.Close()

	sink, err := rowsink.Create(rc.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	stats, runErr := engine.Run(src, rc.promo, sink, rc.log)

	// Close before deciding the outcome so partial output is flushed even on
	// the fatal path.
	if closeErr := sink.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	fmt.Println("Processing complete:")
	fmt.Printf("- Total rows processed:    %d\n", stats.RowsProcessed)
	fmt.Printf("- Valid orders found:      %d\n", stats.EligibleOrders)
	fmt.Printf("- Total tickets generated: %d\n", stats.TicketsGenerated)
	if stats.SuppressedRows > 0 {
		fmt.Printf("- Cancelled rows skipped:  %d\n", stats.SuppressedRows)
	}

	return nil
}
