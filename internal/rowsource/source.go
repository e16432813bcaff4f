// =============================================================================
// Raffle Ticket Generator - Row Sources
// =============================================================================
//
// A row source streams positional rows out of a point-of-sale export, one at
// a time, so memory use stays constant however large the export is. Two
// formats are supported: CSV and XLSX (Square offers both for the same items
// report); the format is selected by file extension.
//
// The first row of the export is the header. It is captured, not emitted: the
// engine addresses fields by position, but the header's field count is the
// contract every data row is checked against. A row with a different field
// count stops the stream with an error naming the offending row.
//
// =============================================================================

package rowsource

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source is a streaming reader of data rows. Usage:
//
//	src, err := rowsource.Open(path)
//	if err != nil { ... }
//	defer src.Close()
//	for src.Next() {
//	    row := src.Row()
//	    ...
//	}
//	if err := src.Err(); err != nil { ... }
type Source interface {
	// Header returns the header row of the export.
	Header() []string

	// Next advances to the next data row. It returns false when the stream
	// is exhausted or a read error occurred.
	Next() bool

	// Row returns the current data row. Valid only after Next returned true.
	Row() []string

	// RowNumber returns the physical row number of the current row, 1-based,
	// counting the header.
	RowNumber() int

	// Err returns the error that terminated the stream, if any.
	Err() error

	// Close releases the underlying file.
	Close() error
}

// Open opens a row source for the given export file, choosing the reader by
// file extension. ".xlsx" opens a workbook source; anything else is read as
// CSV.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return OpenXLSX(path)
	}
	return OpenCSV(path)
}

// isRowEmpty reports whether a row contains only blank cells. Exports
// routinely carry fully empty separator rows; they are skipped rather than
// counted.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowError attaches the physical row number to a structural row error.
func rowError(rowNumber int, format string, args ...interface{}) error {
	return fmt.Errorf("row %d: %s", rowNumber, fmt.Sprintf(format, args...))
}
