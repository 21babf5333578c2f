// Package tabular reads raw translation datasets (CSV, TSV, XLSX) and writes
// the split CSV files together with their manifest.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/slangbridge/internal/domain"
)

// Format is a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", domain.NewValidationError("path", fmt.Sprintf("unsupported dataset format %q", filepath.Ext(path)))
}

// Row is one data row keyed by header name.
type Row map[string]string

// Get returns the cell for col, or "" when the row has no such cell.
func (r Row) Get(col string) string { return r[col] }

// Table is a parsed dataset file.
type Table struct {
	Header []string
	Rows   []Row
}

// ReadOptions controls Read.
type ReadOptions struct {
	// Required lists header names that must be present.
	Required []string
	// Sheet selects the XLSX sheet; empty means the first one.
	Sheet string
}

// Read loads a dataset file. A missing file wraps domain.ErrNotFound and
// absent required columns yield *domain.MissingColumnsError.
func Read(path string, opts ReadOptions) (Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Table{}, err
	}

	var records [][]string
	switch format {
	case FormatXLSX:
		records, err = readXLSX(path, opts.Sheet)
	default:
		records, err = readDelimited(path, format)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, fmt.Errorf("dataset %s: %w", path, domain.ErrNotFound)
		}
		return Table{}, fmt.Errorf("read dataset %s: %w", path, err)
	}

	return buildTable(path, records, opts.Required)
}

func readDelimited(path string, format Format) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if format == FormatTSV {
		reader.Comma = '\t'
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	return f.GetRows(sheet)
}

func buildTable(path string, records [][]string, required []string) (Table, error) {
	if len(records) == 0 {
		if len(required) > 0 {
			return Table{}, &domain.MissingColumnsError{Source: path, Columns: required}
		}
		return Table{}, nil
	}

	header := make([]string, len(records[0]))
	present := make(map[string]bool, len(header))
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		header[i] = h
		present[h] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Table{}, &domain.MissingColumnsError{Source: path, Columns: missing}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
