package engine_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
)

// squareColumns is the position table of the standard Square items export,
// matching the defaults shipped in the promotion configs.
func squareColumns() map[string]int {
	return map[string]int{
		config.FieldDate:          0,
		config.FieldTime:          1,
		config.FieldCategory:      3,
		config.FieldProduct:       4,
		config.FieldQuantity:      5,
		config.FieldModifiers:     8,
		config.FieldGrossSales:    9,
		config.FieldTransactionID: 14,
		config.FieldPaymentID:     15,
		config.FieldCustomerID:    22,
		config.FieldCustomerName:  23,
		config.FieldCustomerRefID: 24,
	}
}

// ticketOutputColumns is the default ticket file layout.
func ticketOutputColumns() []string {
	return []string{
		config.FieldRandomID,
		config.FieldDate,
		config.FieldTime,
		config.FieldTransactionID,
		config.FieldCustomerName,
		config.FieldGrossSales,
		config.FieldCustomerID,
		config.FieldPaymentID,
	}
}

// multiplierPromo is the autumn2025-style promotion: dedicated ticket
// products carrying 1x and 3x multipliers.
func multiplierPromo() *config.Promotion {
	return &config.Promotion{
		Name:       "autumn2025",
		Categories: []string{"Autumn Raffle"},
		Products: map[string]int{
			"Autumn raffle ticket - 3x":     3,
			"Autumn raffle ticket - single": 1,
		},
		Mode:          config.ModeMultiplier,
		Columns:       squareColumns(),
		OutputColumns: ticketOutputColumns(),
	}
}

// unitPricePromo is an autumn-fair-style promotion: $10 per ticket plus a
// bonus ticket per $20.
func unitPricePromo() *config.Promotion {
	return &config.Promotion{
		Name:           "autumn-fair",
		Categories:     []string{"Autumn Fair"},
		Products:       map[string]int{"1x Raffle Ticket": 1},
		Mode:           config.ModeUnitPrice,
		UnitPrice:      money("10"),
		BonusUnitPrice: money("20"),
		Columns:        squareColumns(),
		OutputColumns:  ticketOutputColumns(),
	}
}

func money(s string) config.Money {
	return config.Money{Decimal: decimal.RequireFromString(s)}
}

// makeRow builds a 25-field export row with the given cells set by position.
func makeRow(cells map[int]string) []string {
	row := make([]string, 25)
	for pos, value := range cells {
		row[pos] = value
	}
	return row
}

// saleRow builds a qualifying row in the standard layout.
func saleRow(category, product, quantity, sales, paymentID string) []string {
	return makeRow(map[int]string{
		0:  "2025-05-10",
		1:  "09:15:00",
		3:  category,
		4:  product,
		5:  quantity,
		9:  sales,
		14: "TXN-1",
		15: paymentID,
		22: "CUST-1",
		23: "Jordan Example",
	})
}

// sliceSource is an in-memory Source. failAt, when positive, terminates the
// stream with a structural row error before emitting that data row (1-based
// over the data rows), simulating a field-count mismatch mid-file.
type sliceSource struct {
	rows    [][]string
	failAt  int
	idx     int
	current []string
	err     error
}

func (s *sliceSource) Next() bool {
	if s.err != nil {
		return false
	}
	if s.failAt > 0 && s.idx+1 == s.failAt {
		s.err = fmt.Errorf("row %d: wrong number of fields", s.idx+2)
		return false
	}
	if s.idx >= len(s.rows) {
		return false
	}
	s.current = s.rows[s.idx]
	s.idx++
	return true
}

func (s *sliceSource) Row() []string  { return s.current }
func (s *sliceSource) RowNumber() int { return s.idx + 1 }
func (s *sliceSource) Err() error     { return s.err }

// memSink is an in-memory Sink recording everything it is handed.
type memSink struct {
	header  []string
	records [][]string
}

func (s *memSink) WriteHeader(columns []string) error {
	s.header = columns
	return nil
}

func (s *memSink) WriteRecord(record []string) error {
	s.records = append(s.records, record)
	return nil
}
