// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Crop,Yield,Price,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH_Value,Rainfall
Rice,3200,2100,80,40,40,24,82,6.5,230
Wheat,2900,2015,100,50,50,18,60,6.8,90

Maize,3500,1850,75,45,20,22,65,6.2,85
`

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("expected 3 rows (blank line skipped), got %d", tbl.Len())
	}

	maize := tbl.Row(2)
	if maize.Crop != "Maize" || maize.Index != 2 {
		t.Errorf("unexpected third row: %+v", maize)
	}
	if maize.PHValue != 6.2 || maize.Rainfall != 85 {
		t.Errorf("features not parsed: %+v", maize.FeatureVector)
	}
}

func TestReadCSVHeaderVariants(t *testing.T) {
	t.Parallel()

	data := "crop, YIELD ,price,nitrogen,phosphorus,potassium,temperature,humidity,PH Value,rainfall,notes\n" +
		"Cotton,1800,6000,120,40,20,27,70,7.0,80,irrigated\n"

	tbl, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got := tbl.Row(0); got.Yield != 1800 || got.PHValue != 7.0 {
		t.Errorf("unexpected row: %+v", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing columns",
			data:    "Crop,Yield\nRice,3200\n",
			wantErr: "missing columns: price",
		},
		{
			name:    "non numeric cell",
			data:    "Crop,Yield,Price,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH_Value,Rainfall\nRice,lots,2100,80,40,40,24,82,6.5,230\n",
			wantErr: `row 2: column yield: invalid number "lots"`,
		},
		{
			name:    "empty crop",
			data:    "Crop,Yield,Price,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH_Value,Rainfall\n,3200,2100,80,40,40,24,82,6.5,230\n",
			wantErr: "row 2: empty crop name",
		},
		{
			name:    "short row",
			data:    "Crop,Yield,Price,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH_Value,Rainfall\nRice,3200,2100\n",
			wantErr: "row 2: column nitrogen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadCSV(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader("Crop,Yield,Price,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH_Value,Rainfall\n"))
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestLoadXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crops.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Crop", "Yield", "Price", "Nitrogen", "Phosphorus", "Potassium", "Temperature", "Humidity", "pH_Value", "Rainfall"},
		{"Rice", 3200, 2100, 80, 40, 40, 24.5, 82, 6.5, 230},
		{"Wheat", 2900.5, 2015, 100, 50, 50, 18, 60, 6.8, 90},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &rows[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	_ = f.Close()

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if r := tbl.Row(1); r.Crop != "Wheat" || r.Yield != 2900.5 {
		t.Errorf("unexpected row: %+v", r)
	}
	if r := tbl.Row(0); r.Temperature != 24.5 {
		t.Errorf("expected temperature 24.5, got %v", r.Temperature)
	}

	if _, err := Load(path, Options{Sheet: "Missing"}); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestLoadDispatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "crops.CSV")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(csvPath, Options{}); err != nil {
		t.Errorf("Load csv: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "crops.json"), Options{}); err == nil {
		t.Error("expected unsupported format error")
	}
	if _, err := Load(filepath.Join(dir, "absent.xlsx"), Options{}); err == nil {
		t.Error("expected error for missing workbook")
	}
}
