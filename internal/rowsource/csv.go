package rowsource

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource streams rows from a CSV export.
type CSVSource struct {
	file      *os.File
	reader    *csv.Reader
	header    []string
	current   []string
	rowNumber int
	err       error
}

// OpenCSV opens a CSV export and reads its header row.
func OpenCSV(path string) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	// FieldsPerRecord 0 locks the field count to the first record read (the
	// header); any later row with a different count fails the read.
	reader.FieldsPerRecord = 0
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	src := &CSVSource{file: file, reader: reader}

	if err := src.readHeader(); err != nil {
		file.Close()
		return nil, err
	}

	return src, nil
}

// readHeader reads the header row.
func (s *CSVSource) readHeader() error {
	row, err := s.reader.Read()
	if err == io.EOF {
		return fmt.Errorf("file is empty, no header row")
	}
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}
	s.rowNumber++
	s.header = row
	return nil
}

// Header returns the header row.
func (s *CSVSource) Header() []string {
	return s.header
}

// Next advances to the next data row. Returns false at end of input or on a
// structural error; Err distinguishes the two.
func (s *CSVSource) Next() bool {
	if s.err != nil {
		return false
	}

	row, err := s.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		// encoding/csv tracks the physical line itself, and unlike our row
		// counter it has seen the blank lines it silently skipped, so its
		// line number is the one to report.
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			s.err = rowError(parseErr.Line, "%v", parseErr.Err)
		} else {
			s.err = fmt.Errorf("error reading row %d: %w", s.rowNumber+1, err)
		}
		return false
	}

	s.rowNumber++

	if isRowEmpty(row) {
		return s.Next()
	}

	s.current = row
	return true
}

// Row returns the current data row.
func (s *CSVSource) Row() []string {
	return s.current
}

// RowNumber returns the physical row number of the current row (1-based,
// counting the header).
func (s *CSVSource) RowNumber() int {
	return s.rowNumber
}

// Err returns the error that terminated the stream, if any.
func (s *CSVSource) Err() error {
	return s.err
}

// Close closes the underlying file.
func (s *CSVSource) Close() error {
	return s.file.Close()
}
