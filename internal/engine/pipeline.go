// =============================================================================
// Raffle Ticket Generator - Processing Pipeline
// =============================================================================
//
// The pipeline is a single sequential pass over the export:
//
//   Source -> Extractor -> Classifier -> CancellationSet (gate) -> Expander -> Sink
//
// One row travels the whole way before the next is read. The only state that
// outlives a row is the cancellation set, which grows with the number of
// distinct refunded payment ids. Counters are threaded through the run as a
// Stats value returned to the caller; nothing is package-global.
//
// ERROR POLICY:
//   - Numeric cells that fail to parse are recovered in the extractor
//     (coerced to zero) and processing continues.
//   - A row whose field count disagrees with the header is fatal: the run
//     stops with an error naming the row, and output written so far is
//     preserved. The caller owns closing source and sink.
//
// =============================================================================

package engine

import (
	"fmt"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
	"github.com/kegworth-pc/raffle-tickets/internal/logging"
)

// Source supplies data rows one at a time. rowsource implementations satisfy
// it; tests use in-memory fakes.
type Source interface {
	Next() bool
	Row() []string
	RowNumber() int
	Err() error
}

// Sink accepts the header and then one record per ticket, in order.
type Sink interface {
	WriteHeader(columns []string) error
	WriteRecord(record []string) error
}

// Stats summarises one run.
type Stats struct {
	// RowsProcessed is the number of data rows read from the source.
	RowsProcessed int

	// EligibleOrders is the number of entries that produced at least one
	// ticket.
	EligibleOrders int

	// TicketsGenerated is the number of ticket records written.
	TicketsGenerated int

	// SuppressedRows is the number of otherwise-eligible entries dropped
	// because their payment id was cancelled.
	SuppressedRows int

	// Findings is the number of report rows written by the missing-customer
	// pass. Zero for ticket generation runs.
	Findings int
}

// Run executes the ticket generation pipeline for one promotion over one
// export. Partial output already handed to the sink survives an error return.
func Run(src Source, promo *config.Promotion, sink Sink, log logging.Logger) (Stats, error) {
	var stats Stats

	extractor := NewExtractor(promo)
	classifier := NewClassifier(promo)
	cancellations := NewCancellationSet()
	expander := NewExpander(promo)

	if err := sink.WriteHeader(promo.Header()); err != nil {
		return stats, err
	}

	for src.Next() {
		stats.RowsProcessed++
		entry := extractor.Extract(src.Row())

		// The tracker sees every row, in input order, before the suppression
		// check for that same row.
		cancellations.Observe(entry)

		multiplier, eligible := classifier.Classify(entry)
		if !eligible {
			continue
		}

		if cancellations.Cancelled(entry.PaymentID) {
			stats.SuppressedRows++
			log.Debug("row %d: payment %s is cancelled, suppressing", src.RowNumber(), entry.PaymentID)
			continue
		}

		count := expander.TicketCount(entry, multiplier)
		if count <= 0 {
			continue
		}

		stats.EligibleOrders++
		for _, record := range expander.Expand(entry, count) {
			if err := sink.WriteRecord(record); err != nil {
				return stats, err
			}
			stats.TicketsGenerated++
		}
	}

	if err := src.Err(); err != nil {
		return stats, fmt.Errorf("processing stopped: %w", err)
	}

	log.Debug("pass complete: %d rows, %d cancelled payment id(s)", stats.RowsProcessed, cancellations.Len())
	return stats, nil
}
