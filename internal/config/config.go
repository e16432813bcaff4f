// =============================================================================
// Raffle Ticket Generator - Configuration Module
// =============================================================================
//
// This module loads and manages all configuration. There are two kinds of
// configuration file:
//   1. Main config (config.yaml): paths, defaults and logging for the app
//   2. Promotion configs (configs/*.yaml): one file per promotion
//
// A promotion is a pure data value: the categories and products that qualify,
// how a line item turns into a ticket count, where each logical field sits in
// the export, and which fields each ticket row carries. Adding a promotion is
// a new YAML file, not new code.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Ticket computation modes.
const (
	// ModeMultiplier derives the ticket count from quantity multiplied by the
	// per-product multiplier (e.g. a "3x ticket" product).
	ModeMultiplier = "multiplier"

	// ModeUnitPrice derives the ticket count from gross sales divided by a
	// fixed price per ticket, optionally plus a bonus ticket per a second,
	// larger divisor.
	ModeUnitPrice = "unit_price"
)

// Logical field names recognised in column maps and output column lists.
const (
	FieldRandomID      = "random_id"
	FieldDate          = "date"
	FieldTime          = "time"
	FieldCategory      = "category"
	FieldProduct       = "product"
	FieldQuantity      = "quantity"
	FieldGrossSales    = "gross_sales"
	FieldModifiers     = "modifiers"
	FieldTransactionID = "transaction_id"
	FieldPaymentID     = "payment_id"
	FieldCustomerID    = "customer_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerRefID = "customer_ref_id"
)

// headerLabels maps logical field names to the column labels written in the
// output header. These match the headers of historically generated files.
var headerLabels = map[string]string{
	FieldRandomID:      "RandomID",
	FieldDate:          "Date",
	FieldTime:          "Time",
	FieldCategory:      "Category",
	FieldProduct:       "Product",
	FieldQuantity:      "Quantity",
	FieldGrossSales:    "ProductSales",
	FieldTransactionID: "TransactionID",
	FieldPaymentID:     "PaymentID",
	FieldCustomerID:    "CustomerID",
	FieldCustomerName:  "CustomerName",
	FieldCustomerRefID: "CustomerRefID",
}

// =============================================================================
// MAIN CONFIGURATION
// =============================================================================

// MainConfig holds the global application configuration, loaded from the
// main config.yaml file.
type MainConfig struct {
	// PromotionsDir is the directory containing per-promotion YAML files.
	// Default: "./configs"
	PromotionsDir string `yaml:"promotions_dir"`

	// DefaultPromotion is the promotion used when --promotion is not given.
	DefaultPromotion string `yaml:"default_promotion"`

	// InputSearchPaths is an ordered list of input file locations tried when
	// no input path is given on the command line. The first existing path
	// wins.
	InputSearchPaths []string `yaml:"input_search_paths"`

	// InputFallback is used when no path in InputSearchPaths exists.
	// Default: "test-items.csv"
	InputFallback string `yaml:"input_fallback"`

	// OutputDir is the directory where ticket files are written when no
	// output path is given on the command line.
	// Default: "."
	OutputDir string `yaml:"output_dir"`

	// OutputName is the file name pattern for generated ticket files.
	// Placeholders:
	//   {promo}     - promotion name
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	// Default: "{promo}_entries.csv"
	OutputName string `yaml:"output_name"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// LoadMainConfig loads the main configuration from a YAML file, applies
// defaults and validates it.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.PromotionsDir == "" {
		config.PromotionsDir = "./configs"
	}
	if config.InputFallback == "" {
		config.InputFallback = "test-items.csv"
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.OutputName == "" {
		config.OutputName = "{promo}_entries.csv"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}
	return nil
}

// =============================================================================
// PROMOTION CONFIGURATION
// =============================================================================

// Promotion holds the configuration for a single promotion. It is static for
// the duration of a run and never mutated by the engine.
type Promotion struct {
	// Name identifies the promotion. Defaults to the config file base name.
	Name string `yaml:"name"`

	// Description is free text shown in logs and validate output.
	Description string `yaml:"description"`

	// Categories lists the category names that qualify for this promotion.
	Categories []string `yaml:"categories"`

	// Products maps qualifying product names to their ticket multiplier.
	// An empty map means every product within a qualifying category counts,
	// with an implicit multiplier of 1.
	Products map[string]int `yaml:"products"`

	// Mode selects the ticket computation: ModeMultiplier or ModeUnitPrice.
	// Default: ModeMultiplier
	Mode string `yaml:"mode"`

	// UnitPrice is the price of one ticket in unit-price mode.
	UnitPrice Money `yaml:"unit_price"`

	// BonusUnitPrice, when positive, grants one extra ticket per this amount
	// of gross sales, computed independently of UnitPrice and summed.
	BonusUnitPrice Money `yaml:"bonus_unit_price"`

	// Columns maps logical field names to 0-based positions in the export.
	// Fields absent from the map extract to their zero value. Each export
	// format observed so far used a different subset, so positions are
	// configuration, never code.
	Columns map[string]int `yaml:"columns"`

	// ModifierFields maps extra logical field names to modifier keys. The
	// modifiers column carries "Key:value" pairs separated by commas; each
	// configured key is extracted into a field addressable in OutputColumns.
	ModifierFields map[string]string `yaml:"modifier_fields"`

	// OutputColumns lists the logical fields written per ticket, in order.
	// FieldRandomID yields the freshly generated ticket id.
	OutputColumns []string `yaml:"output_columns"`

	// OutputHeader optionally overrides the header labels. When set it must
	// have the same length as OutputColumns.
	OutputHeader []string `yaml:"output_header"`
}

// defaultColumns is the position table of the Square items export that every
// observed promotion was built against.
var defaultColumns = map[string]int{
	FieldDate:          0,
	FieldTime:          1,
	FieldCategory:      3,
	FieldProduct:       4,
	FieldQuantity:      5,
	FieldModifiers:     8,
	FieldGrossSales:    9,
	FieldTransactionID: 14,
	FieldPaymentID:     15,
	FieldCustomerID:    22,
	FieldCustomerName:  23,
	FieldCustomerRefID: 24,
}

// defaultOutputColumns matches the ticket file layout of the most recent
// promotions.
var defaultOutputColumns = []string{
	FieldRandomID,
	FieldDate,
	FieldTime,
	FieldTransactionID,
	FieldCustomerName,
	FieldGrossSales,
	FieldCustomerID,
	FieldPaymentID,
}

// LoadPromotions loads every promotion configuration from a directory,
// keyed by promotion name.
func LoadPromotions(promotionsDir string) (map[string]*Promotion, error) {
	files, err := filepath.Glob(filepath.Join(promotionsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list promotion configs: %w", err)
	}
	ymlFiles, err := filepath.Glob(filepath.Join(promotionsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list promotion configs: %w", err)
	}
	files = append(files, ymlFiles...)

	if len(files) == 0 {
		return nil, fmt.Errorf("no promotion configs found in %s", promotionsDir)
	}

	promotions := make(map[string]*Promotion)
	for _, file := range files {
		promo, err := LoadPromotion(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		if _, exists := promotions[promo.Name]; exists {
			return nil, fmt.Errorf("duplicate promotion name %q in %s", promo.Name, file)
		}
		promotions[promo.Name] = promo
	}

	return promotions, nil
}

// LoadPromotion loads a single promotion configuration file, applies defaults
// and validates it.
func LoadPromotion(filePath string) (*Promotion, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var promo Promotion
	if err := yaml.Unmarshal(data, &promo); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	applyPromotionDefaults(&promo, filePath)

	if err := promo.Validate(); err != nil {
		return nil, fmt.Errorf("invalid promotion %q: %w", promo.Name, err)
	}

	return &promo, nil
}

// applyPromotionDefaults sets default values for a promotion configuration.
func applyPromotionDefaults(promo *Promotion, filePath string) {
	if promo.Name == "" {
		base := filepath.Base(filePath)
		promo.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	if promo.Mode == "" {
		promo.Mode = ModeMultiplier
	}
	if promo.Columns == nil {
		// Copied, not shared: promotions must not alias one mutable map.
		columns := make(map[string]int, len(defaultColumns))
		for field, pos := range defaultColumns {
			columns[field] = pos
		}
		promo.Columns = columns
	}
	if len(promo.OutputColumns) == 0 {
		promo.OutputColumns = append([]string(nil), defaultOutputColumns...)
	}
}

// Validate checks the promotion configuration for internal consistency.
func (p *Promotion) Validate() error {
	if len(p.Categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}

	switch p.Mode {
	case ModeMultiplier:
		for product, multiplier := range p.Products {
			if multiplier <= 0 {
				return fmt.Errorf("product %q has non-positive multiplier %d", product, multiplier)
			}
		}
	case ModeUnitPrice:
		if !p.UnitPrice.IsPositive() {
			return fmt.Errorf("unit_price must be positive in unit_price mode")
		}
		if p.BonusUnitPrice.IsNegative() {
			return fmt.Errorf("bonus_unit_price must not be negative")
		}
	default:
		return fmt.Errorf("unknown mode %q", p.Mode)
	}

	seen := make(map[int]string, len(p.Columns))
	for field, pos := range p.Columns {
		if pos < 0 {
			return fmt.Errorf("column %q has negative position %d", field, pos)
		}
		if other, dup := seen[pos]; dup {
			return fmt.Errorf("columns %q and %q share position %d", field, other, pos)
		}
		seen[pos] = field
	}

	if len(p.OutputColumns) == 0 {
		return fmt.Errorf("output_columns must not be empty")
	}
	for _, field := range p.OutputColumns {
		if !p.knownField(field) {
			return fmt.Errorf("unknown output column %q", field)
		}
	}

	if len(p.OutputHeader) > 0 && len(p.OutputHeader) != len(p.OutputColumns) {
		return fmt.Errorf("output_header has %d labels for %d output columns",
			len(p.OutputHeader), len(p.OutputColumns))
	}

	return nil
}

// knownField reports whether a logical field name can appear in OutputColumns.
func (p *Promotion) knownField(field string) bool {
	if field == FieldRandomID {
		return true
	}
	if _, ok := headerLabels[field]; ok {
		return true
	}
	_, ok := p.ModifierFields[field]
	return ok
}

// Header returns the output header row for this promotion.
func (p *Promotion) Header() []string {
	if len(p.OutputHeader) > 0 {
		return p.OutputHeader
	}
	header := make([]string, len(p.OutputColumns))
	for i, field := range p.OutputColumns {
		if label, ok := headerLabels[field]; ok {
			header[i] = label
		} else {
			// Modifier fields fall back to their configured key.
			header[i] = p.ModifierFields[field]
		}
	}
	return header
}
