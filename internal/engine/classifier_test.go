package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kegworth-pc/raffle-tickets/internal/engine"
)

func TestClassifyRequiresCategoryAndProduct(t *testing.T) {
	c := engine.NewClassifier(multiplierPromo())

	tests := []struct {
		name       string
		category   string
		product    string
		eligible   bool
		multiplier int
	}{
		{"single ticket", "Autumn Raffle", "Autumn raffle ticket - single", true, 1},
		{"triple ticket", "Autumn Raffle", "Autumn raffle ticket - 3x", true, 3},
		{"wrong category", "Canteen", "Autumn raffle ticket - single", false, 0},
		{"wrong product", "Autumn Raffle", "Sausage roll", false, 0},
		{"both wrong", "Canteen", "Sausage roll", false, 0},
		{"empty fields", "", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, eligible := c.Classify(engine.Entry{
				CategoryName: tt.category,
				ProductName:  tt.product,
			})
			assert.Equal(t, tt.eligible, eligible)
			assert.Equal(t, tt.multiplier, multiplier)
		})
	}
}

func TestClassifyEmptyProductMapAcceptsWholeCategory(t *testing.T) {
	promo := multiplierPromo()
	promo.Products = nil
	c := engine.NewClassifier(promo)

	multiplier, eligible := c.Classify(engine.Entry{
		CategoryName: "Autumn Raffle",
		ProductName:  "Anything at all",
	})
	assert.True(t, eligible)
	assert.Equal(t, 1, multiplier)

	_, eligible = c.Classify(engine.Entry{
		CategoryName: "Canteen",
		ProductName:  "Anything at all",
	})
	assert.False(t, eligible)
}
