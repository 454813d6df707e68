// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package testinfra

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/tomtom215/indradhanu/internal/dataset"
)

// RowsPerCrop is the number of fixture rows for each crop.
const RowsPerCrop = 8

// Centroids of the fixture regions.
var (
	RiceConditions = dataset.FeatureVector{
		Nitrogen: 90, Phosphorus: 45, Potassium: 40,
		Temperature: 26, Humidity: 82, PHValue: 6.5, Rainfall: 210,
	}
	WheatConditions = dataset.FeatureVector{
		Nitrogen: 40, Phosphorus: 60, Potassium: 20,
		Temperature: 16, Humidity: 45, PHValue: 7.2, Rainfall: 60,
	}
	MaizeConditions = dataset.FeatureVector{
		Nitrogen: 65, Phosphorus: 30, Potassium: 70,
		Temperature: 21, Humidity: 62, PHValue: 6.0, Rainfall: 120,
	}
)

type cropRegion struct {
	crop       string
	center     dataset.FeatureVector
	meanYield  float64
	yieldSwing float64
	price      float64
}

// Regions in table order. Crops interleave in the generated table.
var regions = []cropRegion{
	{crop: "Rice", center: RiceConditions, meanYield: 3200, yieldSwing: 100, price: 2100},
	{crop: "Wheat", center: WheatConditions, meanYield: 2800, yieldSwing: 200, price: 2000},
	{crop: "Maize", center: MaizeConditions, meanYield: 2500, yieldSwing: 50, price: 1800},
}

// yieldPattern averages to zero over RowsPerCrop rows.
var yieldPattern = [RowsPerCrop]float64{-1, 0, 1, 0, -1, 0, 1, 0}

// jitter spreads rows symmetrically around a centroid.
var jitter = [RowsPerCrop]float64{-1.5, -1, -0.5, 0, 0, 0.5, 1, 1.5}

// CropRecords returns the fixture rows. Each call returns a fresh slice.
func CropRecords() []dataset.Record {
	out := make([]dataset.Record, 0, RowsPerCrop*len(regions))
	for i := 0; i < RowsPerCrop; i++ {
		for _, r := range regions {
			v := r.center.Slice()
			for j := range v {
				v[j] += jitter[i] * 0.1 * float64(j+1)
			}
			out = append(out, dataset.Record{
				Crop:          r.crop,
				Yield:         r.meanYield + yieldPattern[i]*r.yieldSwing,
				Price:         r.price,
				FeatureVector: dataset.FeatureVectorFromSlice(v),
			})
		}
	}
	return out
}

// CropTable returns the fixture as a table.
func CropTable(t testing.TB) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable(CropRecords())
	if err != nil {
		t.Fatalf("build fixture table: %v", err)
	}
	return table
}

// WriteCropCSV writes the fixture to dir/crops.csv using the published
// column names and returns the file path.
func WriteCropCSV(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "crops.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture csv: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"Crop", "Nitrogen", "Phosphorus", "Potassium", "Temperature", "Humidity", "pH Value", "Rainfall", "Yield", "Price"}
	if err := w.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, r := range CropRecords() {
		row := []string{r.Crop}
		for _, v := range r.Slice() {
			row = append(row, format(v))
		}
		row = append(row, format(r.Yield), format(r.Price))
		if err := w.Write(row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush fixture csv: %v", err)
	}
	return path
}
