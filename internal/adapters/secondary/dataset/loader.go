// Package dataset reads the fixed-schema cross-section table from CSV or
// XLSX files.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"scattering-report/internal/core/domain"
)

// columnCount is the fixed schema width: voltage_kV plus one cross-section
// column per aperture.
const columnCount = 4

// Loader implements ports.DatasetReader for .csv and .xlsx files.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Read(ctx context.Context, path string) (domain.RawTable, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	// First row is the header.
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyDataset)
	}
	table := make(domain.RawTable, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		row, err := parseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("%s: data row %d: %w", path, i+1, err)
		}
		table = append(table, row)
	}
	return table, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetNotFound, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: parse csv: %w", path, err)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetNotFound, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyDataset)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", path, sheet, err)
	}
	return rows, nil
}

func parseRow(cells []string) (domain.RawRow, error) {
	if len(cells) != columnCount {
		return domain.RawRow{}, fmt.Errorf("got %d columns: %w", len(cells), domain.ErrWrongColumnCount)
	}
	values := make([]float64, columnCount)
	for i, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.RawRow{}, fmt.Errorf("column %d value %q: %w", i+1, cell, domain.ErrNonNumericCell)
		}
		values[i] = v
	}
	return domain.RawRow{
		VoltageKV: values[0],
		Sp5:       values[1],
		Sp10:      values[2],
		Sp15:      values[3],
	}, nil
}
