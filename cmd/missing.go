// =============================================================================
// Raffle Ticket Generator - Missing Customer Report Command
// =============================================================================
//
// Some entries are sold at the counter without a customer attached; those
// tickets cannot be drawn because there is nobody to contact. This command
// lists every qualifying line item that has no customer id, so the entries
// can be chased up before the draw.
//
// COMMAND USAGE:
//   raffle missing [input] [output] [flags]
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

// missingCmd represents the 'missing' command.
var missingCmd = &cobra.Command{
	Use:   "missing [input] [output]",
	Short: "Report qualifying entries that are missing a customer id",
	Long: `The missing command reads an items export and writes one report row for
every line item that qualifies for the promotion but carries no customer id.
No tickets are generated.`,

	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMissing(args)
	},
}

func init() {
	rootCmd.AddCommand(missingCmd)

	missingCmd.Flags().StringVar(
		&promotionName,
		"promotion",
		"",
		"Promotion to process (default from main config)",
	)
}

// runMissing executes the missing-customer report pass.
func runMissing(args []string) error {
	rc, err := prepareRun(args, "{promo}_missing_customers.csv")
	if err != nil {
		return err
	}

	fmt.Println("Reporting entries with missing customers:")
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

	stats, runErr := engine.RunMissing(src, rc.promo, sink, rc.log)

	if closeErr := sink.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	fmt.Println("Processing complete:")
	fmt.Printf("- Total rows processed:    %d\n", stats.RowsProcessed)
	fmt.Printf("- Total missing customers: %d\n", stats.Findings)

	return nil
}
