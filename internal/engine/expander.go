package engine

import (
	"github.com/shopspring/decimal"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
)

// Expander turns one qualifying entry into its ticket records.
type Expander struct {
	promo *config.Promotion
}

// NewExpander builds an expander for the given promotion.
func NewExpander(promo *config.Promotion) *Expander {
	return &Expander{promo: promo}
}

// TicketCount computes how many tickets the entry earns.
//
// Multiplier mode: floor(quantity × multiplier).
//
// Unit-price mode: floor(gross sales ÷ unit price), plus, when a bonus unit
// price is configured, floor(gross sales ÷ bonus unit price). The two
// divisions are floored independently and summed; fractional remainders are
// discarded, never rounded up.
func (x *Expander) TicketCount(entry Entry, multiplier int) int {
	switch x.promo.Mode {
	case config.ModeUnitPrice:
		count := entry.GrossSales.Div(x.promo.UnitPrice.Decimal).IntPart()
		if x.promo.BonusUnitPrice.IsPositive() {
			count += entry.GrossSales.Div(x.promo.BonusUnitPrice.Decimal).IntPart()
		}
		return int(count)
	default:
		return int(entry.Quantity.Mul(decimal.NewFromInt(int64(multiplier))).IntPart())
	}
}

// Expand produces one record per ticket, each with a freshly generated
// random id. A count of zero or less yields no records; that is an ordinary
// outcome (zero quantity, sub-price sale), not an error.
func (x *Expander) Expand(entry Entry, count int) [][]string {
	if count <= 0 {
		return nil
	}

	records := make([][]string, count)
	for i := range records {
		record := make([]string, len(x.promo.OutputColumns))
		for j, field := range x.promo.OutputColumns {
			if field == config.FieldRandomID {
				record[j] = NewTicketID()
			} else {
				record[j] = fieldValue(entry, field)
			}
		}
		records[i] = record
	}
	return records
}
