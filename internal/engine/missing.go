package engine

import (
	"fmt"

	"github.com/kegworth-pc/raffle-tickets/internal/config"
	"github.com/kegworth-pc/raffle-tickets/internal/logging"
)

// missingReportColumns are the logical fields carried by each finding row.
var missingReportColumns = []string{
	config.FieldDate,
	config.FieldTime,
	config.FieldTransactionID,
	config.FieldCustomerName,
	config.FieldGrossSales,
	config.FieldCustomerID,
	config.FieldCustomerRefID,
}

// missingReportHeader is the fixed header of the missing-customer report.
var missingReportHeader = []string{
	"Date",
	"Time",
	"TransactionID",
	"CustomerName",
	"ProductSales",
	"CustomerID",
	"CustomerRefID",
}

// RunMissing executes the missing-customer report pass: every entry that
// qualifies for the promotion but carries no customer id becomes one finding
// row. Tickets are not generated and cancellations are not consulted; the
// point of the report is to chase up entries before the draw, refunded or
// not.
func RunMissing(src Source, promo *config.Promotion, sink Sink, log logging.Logger) (Stats, error) {
	var stats Stats

	extractor := NewExtractor(promo)
	classifier := NewClassifier(promo)

	if err := sink.WriteHeader(missingReportHeader); err != nil {
		return stats, err
	}

	for src.Next() {
		stats.RowsProcessed++
		entry := extractor.Extract(src.Row())

		if _, eligible := classifier.Classify(entry); !eligible {
			continue
		}
		if entry.CustomerID != "" {
			continue
		}

		record := make([]string, len(missingReportColumns))
		for i, field := range missingReportColumns {
			record[i] = fieldValue(entry, field)
		}
		if err := sink.WriteRecord(record); err != nil {
			return stats, err
		}
		stats.Findings++
	}

	if err := src.Err(); err != nil {
		return stats, fmt.Errorf("processing stopped: %w", err)
	}

	log.Debug("report complete: %d rows, %d finding(s)", stats.RowsProcessed, stats.Findings)
	return stats, nil
}
