package rowsource

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource streams rows from the first sheet of an XLSX workbook. Square
// offers the items report as a workbook as well as CSV; both carry the same
// columns, so the workbook is adapted to the same Source contract.
type XLSXSource struct {
	file      *excelize.File
	rows      *excelize.Rows
	header    []string
	current   []string
	rowNumber int
	err       error
}

// OpenXLSX opens a workbook export and reads the header row from its first
// sheet.
func OpenXLSX(path string) (*XLSXSource, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		file.Close()
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.Rows(sheets[0])
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	src := &XLSXSource{file: file, rows: rows}

	if err := src.readHeader(); err != nil {
		rows.Close()
		file.Close()
		return nil, err
	}

	return src, nil
}

// readHeader reads the header row.
func (s *XLSXSource) readHeader() error {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return fmt.Errorf("error reading header row: %w", err)
		}
		return fmt.Errorf("sheet is empty, no header row")
	}
	header, err := s.rows.Columns()
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}
	s.rowNumber++
	s.header = header
	return nil
}

// Header returns the header row.
func (s *XLSXSource) Header() []string {
	return s.header
}

// Next advances to the next data row.
func (s *XLSXSource) Next() bool {
	if s.err != nil {
		return false
	}

	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			s.err = fmt.Errorf("error reading row %d: %w", s.rowNumber+1, err)
		}
		return false
	}

	row, err := s.rows.Columns()
	if err != nil {
		s.err = fmt.Errorf("error reading row %d: %w", s.rowNumber+1, err)
		return false
	}

	s.rowNumber++

	if isRowEmpty(row) {
		return s.Next()
	}

	// excelize drops trailing empty cells, so short rows are padded back to
	// the header width. A row wider than the header is structural and fatal,
	// matching the CSV reader's strict field count.
	if len(row) > len(s.header) {
		s.err = rowError(s.rowNumber, "wrong number of fields: got %d, header has %d",
			len(row), len(s.header))
		return false
	}
	for len(row) < len(s.header) {
		row = append(row, "")
	}

	s.current = row
	return true
}

// Row returns the current data row.
func (s *XLSXSource) Row() []string {
	return s.current
}

// RowNumber returns the physical row number of the current row (1-based,
// counting the header).
func (s *XLSXSource) RowNumber() int {
	return s.rowNumber
}

// Err returns the error that terminated the stream, if any.
func (s *XLSXSource) Err() error {
	return s.err
}

// Close closes the sheet iterator and the workbook.
func (s *XLSXSource) Close() error {
	rowsErr := s.rows.Close()
	fileErr := s.file.Close()
	if rowsErr != nil {
		return rowsErr
	}
	return fileErr
}
