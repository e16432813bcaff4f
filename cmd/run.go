package cmd

import (
	"fmt"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
	"github.com/kegworth-pc/raffle-tickets/internal/logging"
	"github.com/kegworth-pc/raffle-tickets/pkg/paths"
)

// promotionName selects the active promotion; shared by generate and missing.
var promotionName string

// runContext is everything a processing command needs, resolved from the
// main config, the promotion configs and the positional arguments.
type runContext struct {
	cfg        *config.MainConfig
	promo      *config.Promotion
	inputPath  string
	outputPath string
	log        logging.Logger
}

// prepareRun loads configuration and resolves the promotion, input path and
// output path for a processing command. args are the positional
// [input] [output] arguments; outputPattern names the output file when no
// explicit output path is given.
func prepareRun(args []string, outputPattern string) (*runContext, error) {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load main config: %w", err)
	}

	promotions, err := config.LoadPromotions(cfg.PromotionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}

	name := promotionName
	if name == "" {
		name = cfg.DefaultPromotion
	}
	if name == "" && len(promotions) == 1 {
		for only := range promotions {
			name = only
		}
	}
	promo, ok := promotions[name]
	if !ok {
		return nil, fmt.Errorf("unknown promotion %q (have %d configured)", name, len(promotions))
	}

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}
	if inputPath == "" {
		inputPath = paths.FindInput(cfg.InputSearchPaths, cfg.InputFallback)
	}

	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}
	if outputPath == "" {
		if outputPattern == "" {
			outputPattern = cfg.OutputName
		}
		outputPath = paths.OutputPath(cfg.OutputDir, outputPattern, promo.Name)
	}

	minLevel := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		minLevel = logging.LevelDebug
	}

	return &runContext{
		cfg:        cfg,
		promo:      promo,
		inputPath:  inputPath,
		outputPath: outputPath,
		log:        logging.NewConsoleLogger(minLevel),
	}, nil
}
