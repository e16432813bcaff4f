package engine

// CancellationSet tracks payment identifiers that have been refunded or
// cancelled. Any entry whose gross sales is negative marks its payment id;
// from that row on, entries referencing the id are suppressed.
//
// The set must observe every row in input order before the suppression check
// for that same row. Because the pass is strictly sequential, a refund only
// blocks the rows at and after the point it appears: tickets already written
// for an earlier sale with the same payment id are not retracted. An export
// where the refund precedes the sale suppresses both rows.
//
// The set lives for one run and is never persisted.
type CancellationSet struct {
	ids map[string]struct{}
}

// NewCancellationSet returns an empty set.
func NewCancellationSet() *CancellationSet {
	return &CancellationSet{ids: make(map[string]struct{})}
}

// Observe inspects one entry and marks its payment id when the entry is a
// refund. Entries without a payment id are ignored; marking "" would tie
// unrelated rows together.
func (s *CancellationSet) Observe(entry Entry) {
	if entry.GrossSales.IsNegative() && entry.PaymentID != "" {
		s.ids[entry.PaymentID] = struct{}{}
	}
}

// Cancelled reports whether the payment id has been marked.
func (s *CancellationSet) Cancelled(paymentID string) bool {
	_, ok := s.ids[paymentID]
	return ok
}

// Len returns the number of distinct cancelled payment ids.
func (s *CancellationSet) Len() int {
	return len(s.ids)
}
