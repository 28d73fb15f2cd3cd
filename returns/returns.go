// SPDX-License-Identifier: MIT

// Package returns reads the returns table the pipeline consumes from CSV or
// XLSX files, optionally converting a price table to log returns, and reads
// the label→sector assignment.
//
// Table layout (both formats): the first row holds the asset labels, every
// following row one observation. A first column headed "date" (any case) is
// treated as an index and dropped. Cleaning of provider quirks (missing days,
// splits, currency) is the caller's job: every cell must parse as a float.
package returns

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/xuri/excelize/v2"
)

const (
	opReadCSV     = "ReadCSV"
	opReadXLSX    = "ReadXLSX"
	opLogReturns  = "LogReturns"
	opReadSectors = "ReadSectors"
	opLoad        = "Load"
)

// Format is the on-disk encoding of a table.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Kind says whether a table holds prices or already-computed returns.
type Kind string

// Supported kinds.
const (
	KindReturns Kind = "returns"
	KindPrices  Kind = "prices"
)

// Table is a labeled T×N observation matrix.
type Table struct {
	Labels []string
	Values *matrix.Dense
}

func returnsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// ReadCSV parses a comma-separated table.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported by parseTable with their line
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, returnsErrorf(opReadCSV, fmt.Errorf("%v: %w", err, ErrMalformedRow))
	}
	t, err := parseTable(records)
	if err != nil {
		return nil, returnsErrorf(opReadCSV, err)
	}

	return t, nil
}

// ReadXLSX parses a table from one sheet of a workbook. An empty sheet name
// selects the first sheet.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, returnsErrorf(opReadXLSX, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, returnsErrorf(opReadXLSX, ErrEmptyInput)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, returnsErrorf(opReadXLSX, fmt.Errorf("sheet %q: %w", sheet, err))
	}
	t, err := parseTable(rows)
	if err != nil {
		return nil, returnsErrorf(opReadXLSX, fmt.Errorf("sheet %q: %w", sheet, err))
	}

	return t, nil
}

// parseTable turns header + rows of cells into a Table.
func parseTable(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, ErrEmptyInput
	}
	header := records[0]
	skip := 0
	if len(header) > 0 && strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		skip = 1
	}
	n := len(header) - skip
	if n < 1 {
		return nil, ErrEmptyInput
	}
	labels := make([]string, n)
	for j := range labels {
		labels[j] = strings.TrimSpace(header[j+skip])
	}

	data := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: %d cells, want %d: %w", line, len(rec), len(header), ErrMalformedRow)
		}
		row := make([]float64, n)
		for j := range row {
			cell := strings.TrimSpace(rec[j+skip])
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d, column %q: cell %q: %w", line, labels[j], cell, ErrMalformedRow)
			}
			row[j] = v
		}
		data = append(data, row)
	}

	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, err
	}

	return &Table{Labels: labels, Values: m}, nil
}

// LogReturns converts a price table (T×N) into log returns ((T−1)×N):
// r_t = ln p_t − ln p_{t−1}.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimension when T < 2.
//   - ErrNonPositivePrice for any p ≤ 0.
func LogReturns(prices matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(prices); err != nil {
		return nil, returnsErrorf(opLogReturns, err)
	}
	t, n := prices.Rows(), prices.Cols()
	if t < 2 {
		return nil, returnsErrorf(opLogReturns, fmt.Errorf("%d price rows: %w", t, matrix.ErrDimension))
	}

	out, err := matrix.NewDense(t-1, n)
	if err != nil {
		return nil, returnsErrorf(opLogReturns, err)
	}
	prev := make([]float64, n)
	for j := 0; j < n; j++ {
		if prev[j], err = positivePrice(prices, 0, j); err != nil {
			return nil, returnsErrorf(opLogReturns, err)
		}
	}
	var p float64
	for i := 1; i < t; i++ {
		for j := 0; j < n; j++ {
			if p, err = positivePrice(prices, i, j); err != nil {
				return nil, returnsErrorf(opLogReturns, err)
			}
			if err = out.Set(i-1, j, math.Log(p)-math.Log(prev[j])); err != nil {
				return nil, returnsErrorf(opLogReturns, err)
			}
			prev[j] = p
		}
	}

	return out, nil
}

func positivePrice(m matrix.Matrix, i, j int) (float64, error) {
	p, err := m.At(i, j)
	if err != nil {
		return 0, err
	}
	if !(p > 0) {
		return 0, fmt.Errorf("row %d, column %d: %v: %w", i, j, p, ErrNonPositivePrice)
	}

	return p, nil
}

// ReadSectors parses "label,sector" rows. A first row "label,sector" (any
// case) is a header and skipped. A label listed twice with different
// sectors is an error.
func ReadSectors(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	out := make(map[string]string)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, returnsErrorf(opReadSectors, fmt.Errorf("%v: %w", err, ErrMalformedRow))
		}
		label, sector := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if line == 1 && strings.EqualFold(label, "label") && strings.EqualFold(sector, "sector") {
			continue
		}
		if label == "" || sector == "" {
			return nil, returnsErrorf(opReadSectors, fmt.Errorf("line %d: empty field: %w", line, ErrMalformedRow))
		}
		if prev, ok := out[label]; ok && prev != sector {
			return nil, returnsErrorf(opReadSectors, fmt.Errorf("line %d: %q in %q and %q: %w", line, label, prev, sector, ErrMalformedRow))
		}
		out[label] = sector
	}

	return out, nil
}

// Load reads path in the given format (empty: inferred from the extension)
// and, for KindPrices, converts the values to log returns.
func Load(path string, format Format, kind Kind, sheet string) (*Table, error) {
	var err error
	if format == "" {
		if format, err = FormatFromPath(path); err != nil {
			return nil, returnsErrorf(opLoad, err)
		}
	}
	if kind == "" {
		kind = KindReturns
	}
	if kind != KindReturns && kind != KindPrices {
		return nil, returnsErrorf(opLoad, fmt.Errorf("kind %q: %w", kind, ErrUnknownFormat))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, returnsErrorf(opLoad, err)
	}
	defer f.Close()

	var t *Table
	switch format {
	case FormatCSV:
		t, err = ReadCSV(f)
	case FormatXLSX:
		t, err = ReadXLSX(f, sheet)
	default:
		err = fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, returnsErrorf(opLoad, err)
	}

	if kind == KindPrices {
		if t.Values, err = LogReturns(t.Values); err != nil {
			return nil, returnsErrorf(opLoad, err)
		}
	}

	return t, nil
}

// LoadSectors opens path and calls ReadSectors.
func LoadSectors(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, returnsErrorf(opReadSectors, err)
	}
	defer f.Close()

	return ReadSectors(f)
}
