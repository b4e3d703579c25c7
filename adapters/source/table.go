package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calsdt/domain/core"
	"calsdt/domain/phone"
	"calsdt/internal/errors"
	"calsdt/ports"

	"github.com/xuri/excelize/v2"
)

// TableOptions selects which cells of a spreadsheet hold the candidates
type TableOptions struct {
	// Sheet defaults to the first sheet of the workbook; ignored for CSV
	Sheet string
	// Column is a header name. When set the first row is a header row.
	Column string
	// Header marks the first row as a header even when Column is empty
	Header bool
}

// TableSource reads candidates from one column of an XLSX or CSV file. When
// no column is named, the column where most cells hold a 10-digit number is used.
type TableSource struct {
	path     string
	fileType string // "xlsx" or "csv"
	opts     TableOptions
}

var _ ports.LineSource = (*TableSource)(nil)

// NewTableSource creates a table source; the file type follows the extension
func NewTableSource(path string, opts TableOptions) (*TableSource, error) {
	var fileType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		fileType = "csv"
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	default:
		return nil, core.NewUnsupportedFormatError(filepath.Ext(path))
	}
	return &TableSource{path: path, fileType: fileType, opts: opts}, nil
}

func (s *TableSource) Name() string { return s.path }

func (s *TableSource) ReadLines(ctx context.Context) ([]string, error) {
	var (
		rows [][]string
		err  error
	)
	switch s.fileType {
	case "csv":
		rows, err = s.readCSVRows()
	default:
		rows, err = s.readExcelRows()
	}
	if err != nil {
		return nil, errors.SourceError(s.path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	header := s.opts.Header || s.opts.Column != ""
	col, err := s.selectColumn(rows, header)
	if err != nil {
		return nil, errors.SourceError(s.path, err)
	}
	if header && len(rows) > 0 {
		rows = rows[1:]
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		if col < len(row) {
			lines[i] = strings.TrimSpace(row[col])
			if s.fileType != "csv" {
				lines[i] = restoreLeadingZero(lines[i])
			}
		}
	}
	return lines, nil
}

// restoreLeadingZero puts back the 0 a numeric XLSX cell drops from a
// 10-digit number.
func restoreLeadingZero(cell string) string {
	if len(cell) != 9 {
		return cell
	}
	for _, r := range cell {
		if r < '0' || r > '9' {
			return cell
		}
	}
	return "0" + cell
}

// readExcelRows reads every row of the configured sheet
func (s *TableSource) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := s.opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	return rows, nil
}

func (s *TableSource) readCSVRows() ([][]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (s *TableSource) selectColumn(rows [][]string, header bool) (int, error) {
	if s.opts.Column != "" {
		if len(rows) == 0 {
			return 0, fmt.Errorf("column %q not found: file is empty", s.opts.Column)
		}
		for i, name := range rows[0] {
			if strings.EqualFold(strings.TrimSpace(name), s.opts.Column) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("column %q not found", s.opts.Column)
	}

	data := rows
	if header && len(data) > 0 {
		data = data[1:]
	}
	return DetectNumberColumn(data), nil
}

// DetectNumberColumn returns the index of the column where the most cells
// parse as a 10-digit number. Ties go to the leftmost column.
func DetectNumberColumn(rows [][]string) int {
	var hits []int
	for _, row := range rows {
		for i, cell := range row {
			if _, err := phone.Extract(cell); err != nil {
				continue
			}
			for len(hits) <= i {
				hits = append(hits, 0)
			}
			hits[i]++
		}
	}

	best := 0
	for i, n := range hits {
		if n > hits[best] {
			best = i
		}
	}
	return best
}
