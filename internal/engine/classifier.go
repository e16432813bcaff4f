package engine

import (
	"github.com/kegworth-pc/raffle-tickets/internal/config"
)

// Classifier decides whether an entry belongs to the promotion and, if so,
// which ticket multiplier its product carries. It is a pure lookup: no state,
// no I/O.
type Classifier struct {
	categories map[string]struct{}
	products   map[string]int
}

// NewClassifier builds a classifier from a promotion's categories and
// products.
func NewClassifier(promo *config.Promotion) *Classifier {
	categories := make(map[string]struct{}, len(promo.Categories))
	for _, c := range promo.Categories {
		categories[c] = struct{}{}
	}
	return &Classifier{categories: categories, products: promo.Products}
}

// Classify reports whether the entry qualifies and returns its multiplier.
// An entry qualifies when its category is one of the promotion's categories
// and its product is in the product map. A promotion with no product map
// accepts any product in a qualifying category with a multiplier of 1
// (quantity-only promotions sell a single generic item).
func (c *Classifier) Classify(entry Entry) (multiplier int, eligible bool) {
	if _, ok := c.categories[entry.CategoryName]; !ok {
		return 0, false
	}
	if len(c.products) == 0 {
		return 1, true
	}
	multiplier, eligible = c.products[entry.ProductName]
	return multiplier, eligible
}
