// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package testinfra

import (
	"io"
	"net/http"
	"testing"

	"github.com/tomtom215/indradhanu/internal/dataset"
)

func TestCropRecords(t *testing.T) {
	t.Parallel()

	records := CropRecords()
	if len(records) != RowsPerCrop*3 {
		t.Fatalf("len = %d, want %d", len(records), RowsPerCrop*3)
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range records {
		sums[r.Crop] += r.Yield
		counts[r.Crop]++
		if r.Crop == "Rice" && r.Price != 2100 {
			t.Errorf("rice price = %v, want 2100", r.Price)
		}
	}
	if got := sums["Rice"] / float64(counts["Rice"]); got != 3200 {
		t.Errorf("mean rice yield = %v, want 3200", got)
	}
}

func TestWriteCropCSV(t *testing.T) {
	t.Parallel()

	path := WriteCropCSV(t, t.TempDir())
	table, err := dataset.Load(path, dataset.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != len(CropRecords()) {
		t.Errorf("rows = %d, want %d", table.Len(), len(CropRecords()))
	}
	if got := table.Row(0).Crop; got != "Rice" {
		t.Errorf("first crop = %q, want Rice", got)
	}
}

func TestMockWeatherServer(t *testing.T) {
	t.Parallel()

	m := NewMockWeatherServer(t, OpenWeatherBody("Pune", 24.5, 60, -1))

	resp, err := http.Get(m.URL() + "/data/2.5/weather?q=Pune")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if len(body) == 0 {
		t.Error("empty body")
	}

	caps := m.Captures()
	if len(caps) != 1 || caps[0].Query.Get("q") != "Pune" {
		t.Errorf("captures = %+v", caps)
	}

	m.SetResponse(http.StatusNotFound, OpenWeatherError(404, "city not found"))
	resp, err = http.Get(m.URL() + "/data/2.5/weather?q=Nowhere")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if m.Requests() != 2 {
		t.Errorf("requests = %d, want 2", m.Requests())
	}
}
