// =============================================================================
// Raffle Ticket Generator - Row Sink
// =============================================================================
//
// The row sink owns the output CSV file and nothing else: it creates the
// parent directory before the first byte is written, writes the header
// exactly once, and appends records in the order they arrive. It holds no
// business logic.
//
// Close flushes on every exit path, so a run aborted mid-file still leaves
// the header and all records written so far on disk.
//
// =============================================================================

package rowsink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes ticket records to a CSV file.
type Writer struct {
	file        *os.File
	csv         *csv.Writer
	headerDone  bool
	recordCount int
}

// Create opens the output file for writing, creating parent directories as
// needed. An existing file at the path is truncated.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{file: file, csv: csv.NewWriter(file)}, nil
}

// WriteHeader writes the header row. It must be called before the first
// record and has no effect on subsequent calls.
func (w *Writer) WriteHeader(columns []string) error {
	if w.headerDone {
		return nil
	}
	if err := w.csv.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	w.headerDone = true
	return nil
}

// WriteRecord writes one output record.
func (w *Writer) WriteRecord(record []string) error {
	if !w.headerDone {
		return fmt.Errorf("header must be written before records")
	}
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	w.recordCount++
	return nil
}

// RecordCount returns the number of records written, excluding the header.
func (w *Writer) RecordCount() int {
	return w.recordCount
}

// Close flushes buffered rows and closes the file. Safe to call on the error
// path; whatever was written stays written.
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	return closeErr
}
