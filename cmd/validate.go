// =============================================================================
// Raffle Ticket Generator - Validate Command
// =============================================================================
//
// Loads the main configuration and every promotion configuration without
// processing anything, so a new promotion file can be checked before the
// export arrives.
//
// COMMAND USAGE:
//   raffle validate
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration files without processing",
	Long: `The validate command loads the main configuration and all promotion
configurations, applying the same defaults and checks a processing run would,
and reports what it finds. Nothing is read or written beyond the
configuration files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate loads and reports on all configuration.
func runValidate() error {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	fmt.Printf("Main config OK (%s)\n", cfgFile)
	fmt.Printf("- Promotions dir:    %s\n", cfg.PromotionsDir)
	fmt.Printf("- Default promotion: %s\n", cfg.DefaultPromotion)
	fmt.Printf("- Output:            %s\n", cfg.OutputName)

	promotions, err := config.LoadPromotions(cfg.PromotionsDir)
	if err != nil {
		return fmt.Errorf("failed to load promotions: %w", err)
	}

	names := make([]string, 0, len(promotions))
	for name := range promotions {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Loaded %d promotion configuration(s):\n", len(promotions))
	for _, name := range names {
		promo := promotions[name]
		switch promo.Mode {
		case config.ModeUnitPrice:
			if promo.BonusUnitPrice.IsPositive() {
				fmt.Printf("- %s: unit price $%s (+ bonus per $%s), %d product(s)\n",
					name, promo.UnitPrice, promo.BonusUnitPrice, len(promo.Products))
			} else {
				fmt.Printf("- %s: unit price $%s, %d product(s)\n",
					name, promo.UnitPrice, len(promo.Products))
			}
		default:
			if len(promo.Products) == 0 {
				fmt.Printf("- %s: multiplier mode, any product in category\n", name)
			} else {
				fmt.Printf("- %s: multiplier mode, %d product(s)\n", name, len(promo.Products))
			}
		}
	}

	if cfg.DefaultPromotion != "" {
		if _, ok := promotions[cfg.DefaultPromotion]; !ok {
			return fmt.Errorf("default_promotion %q is not a configured promotion", cfg.DefaultPromotion)
		}
	}

	return nil
}
