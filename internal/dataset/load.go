// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package dataset loads the historical crop table that every model and
// reference lookup is built from.
//
// The canonical source is an Excel workbook with the columns
// Crop, Yield, Price, Nitrogen, Phosphorus, Potassium, Temperature,
// Humidity, pH_Value and Rainfall. CSV files with the same header are
// accepted as well. Header matching ignores case, surrounding space and the
// difference between spaces and underscores; extra columns are ignored.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Options tunes Load.
type Options struct {
	// Sheet selects the worksheet of an .xlsx file. Empty means the first sheet.
	Sheet string
}

// Load reads a dataset file, choosing the parser from the file extension.
func Load(path string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts.Sheet)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

var requiredColumns = []string{
	"crop", "yield", "price",
	"nitrogen", "phosphorus", "potassium", "temperature", "humidity", "ph_value", "rainfall",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// columnIndex maps each required column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		n := normalizeHeader(h)
		if _, dup := idx[n]; !dup {
			idx[n] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseRows converts raw string rows, header first, into a Table. Error
// messages use 1-based row numbers that count the header.
func parseRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	idx, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		line := i + 2
		rec, err := parseRecord(row, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return NewTable(records)
}

func parseRecord(row []string, idx map[string]int) (Record, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec Record
	rec.Crop = cell("crop")
	if rec.Crop == "" {
		return rec, errors.New("empty crop name")
	}

	values := make(map[string]float64, len(requiredColumns)-1)
	for _, col := range requiredColumns[1:] {
		raw := cell(col)
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			return rec, fmt.Errorf("column %s: invalid number %q", col, raw)
		}
		values[col] = v
	}

	rec.Yield = values["yield"]
	rec.Price = values["price"]
	rec.FeatureVector = FeatureVector{
		Nitrogen:    values["nitrogen"],
		Phosphorus:  values["phosphorus"],
		Potassium:   values["potassium"],
		Temperature: values["temperature"],
		Humidity:    values["humidity"],
		PHValue:     values["ph_value"],
		Rainfall:    values["rainfall"],
	}
	return rec, nil
}
