package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMainConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml",
		"default_promotion: autumn2025\n")

	cfg, err := config.LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "autumn2025", cfg.DefaultPromotion)
	assert.Equal(t, "./configs", cfg.PromotionsDir)
	assert.Equal(t, "test-items.csv", cfg.InputFallback)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "{promo}_entries.csv", cfg.OutputName)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMainConfigRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml",
		"log_level: loud\n")

	_, err := config.LoadMainConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadMainConfigMissingFile(t *testing.T) {
	_, err := config.LoadMainConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadPromotionMultiplierMode(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "autumn2025.yaml", `
categories:
  - Autumn Raffle
products:
  "Autumn raffle ticket - single": 1
  "Autumn raffle ticket - 3x": 3
`)

	promo, err := config.LoadPromotion(path)
	require.NoError(t, err)

	assert.Equal(t, "autumn2025", promo.Name, "name defaults to the file base name")
	assert.Equal(t, config.ModeMultiplier, promo.Mode)
	assert.Equal(t, 3, promo.Products["Autumn raffle ticket - 3x"])
	assert.Equal(t, 9, promo.Columns[config.FieldGrossSales], "default column table applies")
	assert.Equal(t, config.FieldRandomID, promo.OutputColumns[0])
}

func TestLoadPromotionUnitPriceMode(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "fair.yaml", `
name: autumn-fair
categories:
  - Autumn Fair
mode: unit_price
unit_price: "10"
bonus_unit_price: "20"
`)

	promo, err := config.LoadPromotion(path)
	require.NoError(t, err)

	assert.Equal(t, config.ModeUnitPrice, promo.Mode)
	assert.True(t, promo.UnitPrice.Equal(decimal.RequireFromString("10")))
	assert.True(t, promo.BonusUnitPrice.Equal(decimal.RequireFromString("20")))
}

func TestLoadPromotionValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"no categories",
			"products:\n  Ticket: 1\n",
			"categories",
		},
		{
			"unknown mode",
			"categories: [Raffle]\nmode: lottery\n",
			"unknown mode",
		},
		{
			"non-positive multiplier",
			"categories: [Raffle]\nproducts:\n  Ticket: 0\n",
			"non-positive multiplier",
		},
		{
			"unit price missing",
			"categories: [Raffle]\nmode: unit_price\n",
			"unit_price must be positive",
		},
		{
			"negative bonus",
			"categories: [Raffle]\nmode: unit_price\nunit_price: \"5\"\nbonus_unit_price: \"-1\"\n",
			"bonus_unit_price",
		},
		{
			"duplicate column positions",
			"categories: [Raffle]\ncolumns:\n  date: 0\n  time: 0\n",
			"share position",
		},
		{
			"negative column position",
			"categories: [Raffle]\ncolumns:\n  date: -1\n",
			"negative position",
		},
		{
			"unknown output column",
			"categories: [Raffle]\noutput_columns: [random_id, favourite_colour]\n",
			"unknown output column",
		},
		{
			"header length mismatch",
			"categories: [Raffle]\noutput_columns: [random_id, date]\noutput_header: [ID]\n",
			"output_header",
		},
		{
			"bad money scalar",
			"categories: [Raffle]\nmode: unit_price\nunit_price: \"ten\"\n",
			"invalid money amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "promo.yaml", tt.yaml)
			_, err := config.LoadPromotion(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPromotionHeaderLabels(t *testing.T) {
	promo := &config.Promotion{
		Categories:    []string{"Raffle"},
		OutputColumns: []string{"random_id", "date", "gross_sales"},
	}
	require.NoError(t, promo.Validate())

	assert.Equal(t, []string{"RandomID", "Date", "ProductSales"}, promo.Header())
}

func TestPromotionHeaderModifierFallback(t *testing.T) {
	promo := &config.Promotion{
		Categories:     []string{"Raffle"},
		ModifierFields: map[string]string{"child_name": "Name"},
		OutputColumns:  []string{"random_id", "child_name"},
	}
	require.NoError(t, promo.Validate())

	assert.Equal(t, []string{"RandomID", "Name"}, promo.Header())
}

func TestPromotionHeaderOverride(t *testing.T) {
	promo := &config.Promotion{
		Categories:    []string{"Raffle"},
		OutputColumns: []string{"random_id", "date"},
		OutputHeader:  []string{"Ticket", "SoldOn"},
	}
	require.NoError(t, promo.Validate())

	assert.Equal(t, []string{"Ticket", "SoldOn"}, promo.Header())
}

func TestLoadPromotionsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "one.yaml", "categories: [Raffle]\n")
	writeConfig(t, dir, "two.yml", "categories: [Fair]\n")

	promotions, err := config.LoadPromotions(dir)
	require.NoError(t, err)

	assert.Len(t, promotions, 2)
	assert.Contains(t, promotions, "one")
	assert.Contains(t, promotions, "two")
}

func TestShippedPromotionConfigsLoad(t *testing.T) {
	promotions, err := config.LoadPromotions(filepath.Join("..", "..", "configs"))
	require.NoError(t, err)

	for _, name := range []string{
		"autumn2025",
		"autumn-fair",
		"celebration",
		"fathers-day",
		"halloween-disco",
		"halloween-food",
		"sausage-sizzle",
	} {
		assert.Contains(t, promotions, name)
	}

	celebration := promotions["celebration"]
	assert.Equal(t, config.ModeUnitPrice, celebration.Mode)
	assert.True(t, celebration.UnitPrice.Equal(decimal.RequireFromString("80")))
	assert.Contains(t, celebration.Categories, "None")
}

func TestLoadPromotionsDefaultColumnsNotShared(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "one.yaml", "categories: [Raffle]\n")
	writeConfig(t, dir, "two.yaml", "categories: [Fair]\n")

	promotions, err := config.LoadPromotions(dir)
	require.NoError(t, err)

	promotions["one"].Columns[config.FieldDate] = 99

	assert.Equal(t, 0, promotions["two"].Columns[config.FieldDate],
		"defaulted column maps must be independent per promotion")
}

func TestLoadPromotionsDuplicateName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.yaml", "name: clash\ncategories: [Raffle]\n")
	writeConfig(t, dir, "b.yaml", "name: clash\ncategories: [Fair]\n")

	_, err := config.LoadPromotions(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate promotion name")
}

func TestLoadPromotionsEmptyDirectory(t *testing.T) {
	_, err := config.LoadPromotions(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no promotion configs found")
}
