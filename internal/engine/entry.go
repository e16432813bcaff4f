// =============================================================================
// Raffle Ticket Generator - Entry Extraction
// =============================================================================
//
// An Entry is one typed line item derived from a raw export row. Extraction
// addresses fields by the promotion's position table and never fails: text
// fields missing from the row come back empty, numeric fields that do not
// parse come back zero. Only the row's shape (field count) is the source's
// problem; by the time a row reaches the extractor it has the header's width.
//
// =============================================================================

package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
)

// Entry is one parsed line item. Entries are immutable values: the extractor
// builds one per row and nothing downstream writes to it.
type Entry struct {
	Date          string
	Time          string
	TransactionID string
	CustomerName  string
	CategoryName  string
	ProductName   string
	PaymentID     string
	CustomerID    string
	CustomerRefID string

	// Quantity is the purchased quantity; zero when absent or unparsable.
	Quantity decimal.Decimal

	// GrossSales is the line item's gross sales amount with any "$" stripped;
	// zero when absent or unparsable. Negative for refunds.
	GrossSales decimal.Decimal

	// Modifiers holds the values of configured modifier fields, keyed by
	// logical field name.
	Modifiers map[string]string
}

// SalesString renders the gross sales amount the way ticket files have always
// carried it: minimal decimal form with at least one fractional digit, so
// "$5.00" comes out as "5.0".
func (e Entry) SalesString() string {
	f, _ := e.GrossSales.Float64()
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Extractor maps raw rows to Entries using a promotion's column positions.
type Extractor struct {
	columns   map[string]int
	modifiers []modifierPattern
}

// modifierPattern extracts one "Key:value" pair out of the modifiers column.
type modifierPattern struct {
	field   string
	pattern *regexp.Regexp
}

// NewExtractor builds an extractor for the given promotion.
func NewExtractor(promo *config.Promotion) *Extractor {
	x := &Extractor{columns: promo.Columns}
	for field, key := range promo.ModifierFields {
		// Modifier cells look like "Name:Alice, Class:3K"; each configured
		// key captures up to the next comma.
		x.modifiers = append(x.modifiers, modifierPattern{
			field:   field,
			pattern: regexp.MustCompile(regexp.QuoteMeta(key) + `:([^,]*)`),
		})
	}
	return x
}

// Extract builds an Entry from a raw row. It never fails.
func (x *Extractor) Extract(row []string) Entry {
	entry := Entry{
		Date:          x.field(row, config.FieldDate),
		Time:          x.field(row, config.FieldTime),
		TransactionID: x.field(row, config.FieldTransactionID),
		CustomerName:  x.field(row, config.FieldCustomerName),
		CategoryName:  x.field(row, config.FieldCategory),
		ProductName:   x.field(row, config.FieldProduct),
		PaymentID:     x.field(row, config.FieldPaymentID),
		CustomerID:    x.field(row, config.FieldCustomerID),
		CustomerRefID: x.field(row, config.FieldCustomerRefID),
		Quantity:      parseAmount(x.field(row, config.FieldQuantity)),
		GrossSales:    parseAmount(x.field(row, config.FieldGrossSales)),
	}

	if len(x.modifiers) > 0 {
		cell := x.field(row, config.FieldModifiers)
		entry.Modifiers = make(map[string]string, len(x.modifiers))
		for _, m := range x.modifiers {
			value := ""
			if match := m.pattern.FindStringSubmatch(cell); match != nil {
				value = strings.TrimSpace(match[1])
			}
			entry.Modifiers[m.field] = value
		}
	}

	return entry
}

// field returns the cell at the configured position for a logical field, or
// "" when the field is unmapped or the row is too short.
func (x *Extractor) field(row []string, name string) string {
	pos, ok := x.columns[name]
	if !ok || pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}

// parseAmount parses a numeric cell, stripping a literal "$". Unparsable
// values degrade to zero rather than failing the row: a zero quantity simply
// yields zero tickets.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, "$", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// fieldValue resolves a logical output column name against an entry.
func fieldValue(e Entry, field string) string {
	switch field {
	case config.FieldDate:
		return e.Date
	case config.FieldTime:
		return e.Time
	case config.FieldCategory:
		return e.CategoryName
	case config.FieldProduct:
		return e.ProductName
	case config.FieldQuantity:
		return e.Quantity.String()
	case config.FieldGrossSales:
		return e.SalesString()
	case config.FieldTransactionID:
		return e.TransactionID
	case config.FieldPaymentID:
		return e.PaymentID
	case config.FieldCustomerID:
		return e.CustomerID
	case config.FieldCustomerName:
		return e.CustomerName
	case config.FieldCustomerRefID:
		return e.CustomerRefID
	default:
		return e.Modifiers[field]
	}
}
