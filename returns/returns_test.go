// SPDX-License-Identifier: MIT
package returns_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/katalvlaran/precisiongraph/returns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestReadCSV(t *testing.T) {
	t.Parallel()
	in := "date,AAPL,MSFT\n2024-01-02,0.01,-0.02\n2024-01-03, 0.03,0.00\n"
	tbl, err := returns.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "MSFT"}, tbl.Labels)
	require.Equal(t, 2, tbl.Values.Rows())
	require.Equal(t, 2, tbl.Values.Cols())
	assert.Equal(t, 0.03, at(t, tbl.Values, 1, 0))
	assert.Equal(t, -0.02, at(t, tbl.Values, 0, 1))
}

func TestReadCSV_NoDateColumn(t *testing.T) {
	t.Parallel()
	tbl, err := returns.ReadCSV(strings.NewReader("A,B,C\n1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, tbl.Labels)
	assert.Equal(t, 6.0, at(t, tbl.Values, 1, 2))
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":       {"", returns.ErrEmptyInput},
		"header only": {"A,B\n", returns.ErrEmptyInput},
		"date only":   {"date\n2024-01-01\n", returns.ErrEmptyInput},
		"ragged":      {"A,B\n1,2\n3\n", returns.ErrMalformedRow},
		"not a float": {"A,B\n1,x\n", returns.ErrMalformedRow},
		"blank cell":  {"A,B\n1,\n", returns.ErrMalformedRow},
		"nan":         {"A,B\n1,NaN\n", returns.ErrMalformedRow},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := returns.ReadCSV(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func workbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestReadXLSX(t *testing.T) {
	t.Parallel()
	buf := workbook(t, "Prices", [][]interface{}{
		{"Date", "XOM", "JPM"},
		{"2024-01-02", 100.0, 50.0},
		{"2024-01-03", 110.0, 45.0},
	})

	tbl, err := returns.ReadXLSX(bytes.NewReader(buf.Bytes()), "Prices")
	require.NoError(t, err)
	require.Equal(t, []string{"XOM", "JPM"}, tbl.Labels)
	assert.Equal(t, 110.0, at(t, tbl.Values, 1, 0))
	assert.Equal(t, 45.0, at(t, tbl.Values, 1, 1))

	_, err = returns.ReadXLSX(bytes.NewReader(buf.Bytes()), "Missing")
	require.Error(t, err)
}

func TestReadXLSX_FirstSheet(t *testing.T) {
	t.Parallel()
	buf := workbook(t, "Sheet1", [][]interface{}{{"A", "B"}, {1.5, 2.5}, {3.5, 4.5}})
	tbl, err := returns.ReadXLSX(buf, "")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, tbl.Labels)
	assert.Equal(t, 4.5, at(t, tbl.Values, 1, 1))
}

func TestLogReturns(t *testing.T) {
	t.Parallel()
	prices, err := matrix.NewDenseFromRows([][]float64{{100, 10}, {110, 5}, {121, 10}})
	require.NoError(t, err)

	r, err := returns.LogReturns(prices)
	require.NoError(t, err)
	require.Equal(t, 2, r.Rows())
	assert.InDelta(t, math.Log(1.1), at(t, r, 0, 0), 1e-15)
	assert.InDelta(t, math.Log(1.1), at(t, r, 1, 0), 1e-15)
	assert.InDelta(t, -math.Log(2), at(t, r, 0, 1), 1e-15)
	assert.InDelta(t, math.Log(2), at(t, r, 1, 1), 1e-15)
}

func TestLogReturns_Errors(t *testing.T) {
	t.Parallel()
	_, err := returns.LogReturns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	one, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = returns.LogReturns(one)
	require.ErrorIs(t, err, matrix.ErrDimension)

	zero, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {1, 0}})
	require.NoError(t, err)
	_, err = returns.LogReturns(zero)
	require.ErrorIs(t, err, returns.ErrNonPositivePrice)
}

func TestReadSectors(t *testing.T) {
	t.Parallel()
	in := "label,sector\nAAPL,Tech\nXOM, Energy\nAAPL,Tech\n"
	s, err := returns.ReadSectors(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, map[string]string{"AAPL": "Tech", "XOM": "Energy"}, s)

	_, err = returns.ReadSectors(strings.NewReader("AAPL,Tech\nAAPL,Energy\n"))
	require.ErrorIs(t, err, returns.ErrMalformedRow)

	_, err = returns.ReadSectors(strings.NewReader("AAPL\n"))
	require.ErrorIs(t, err, returns.ErrMalformedRow)

	_, err = returns.ReadSectors(strings.NewReader("AAPL,\n"))
	require.ErrorIs(t, err, returns.ErrMalformedRow)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,A,B\nd1,1,2\nd2,2,2\nd3,4,1\n"), 0o600))

	tbl, err := returns.Load(path, "", returns.KindPrices, "")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Values.Rows())
	assert.InDelta(t, math.Log(2), at(t, tbl.Values, 1, 0), 1e-15)

	raw, err := returns.Load(path, returns.FormatCSV, "", "")
	require.NoError(t, err)
	require.Equal(t, 3, raw.Values.Rows())

	_, err = returns.Load(filepath.Join(dir, "x.parquet"), "", "", "")
	require.ErrorIs(t, err, returns.ErrUnknownFormat)

	_, err = returns.Load(path, "", "volumes", "")
	require.ErrorIs(t, err, returns.ErrUnknownFormat)

	sp := filepath.Join(dir, "sectors.csv")
	require.NoError(t, os.WriteFile(sp, []byte("A,Tech\n"), 0o600))
	s, err := returns.LoadSectors(sp)
	require.NoError(t, err)
	require.Equal(t, "Tech", s["A"])
}
