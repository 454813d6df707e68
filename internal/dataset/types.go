// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package dataset

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"slices"
)

// NumFeatures is the width of a FeatureVector.
const NumFeatures = 7

// FeatureNames lists the feature columns in canonical model order.
var FeatureNames = [NumFeatures]string{
	"nitrogen", "phosphorus", "potassium", "temperature", "humidity", "ph_value", "rainfall",
}

// FeatureVector holds one set of soil and climate measurements.
// Nitrogen, phosphorus and potassium are kg/ha, temperature is degrees
// Celsius, humidity is percent and rainfall is mm.
type FeatureVector struct {
	Nitrogen    float64 `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus" yaml:"phosphorus"`
	Potassium   float64 `json:"potassium" yaml:"potassium"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	PHValue     float64 `json:"ph_value" yaml:"ph_value"`
	Rainfall    float64 `json:"rainfall" yaml:"rainfall"`
}

// Slice returns the features in canonical model order.
func (f FeatureVector) Slice() []float64 {
	return []float64{f.Nitrogen, f.Phosphorus, f.Potassium, f.Temperature, f.Humidity, f.PHValue, f.Rainfall}
}

// FeatureVectorFromSlice is the inverse of Slice. It panics unless
// len(v) == NumFeatures.
func FeatureVectorFromSlice(v []float64) FeatureVector {
	_ = v[NumFeatures-1]
	return FeatureVector{
		Nitrogen:    v[0],
		Phosphorus:  v[1],
		Potassium:   v[2],
		Temperature: v[3],
		Humidity:    v[4],
		PHValue:     v[5],
		Rainfall:    v[6],
	}
}

// Record is one historical observation.
type Record struct {
	// Index is the zero-based position of the row in the source table.
	Index int `json:"index"`

	Crop  string  `json:"crop"`
	Yield float64 `json:"yield"`
	Price float64 `json:"price"`

	FeatureVector
}

// ErrEmptyTable is returned when a dataset contains no data rows.
var ErrEmptyTable = errors.New("dataset has no rows")

// Table is an ordered, read-only set of records. It is safe for concurrent
// use because nothing mutates it after NewTable returns.
type Table struct {
	rows []Record
}

// NewTable copies rows into a Table, renumbering Index to match row order.
func NewTable(rows []Record) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	cp := slices.Clone(rows)
	for i := range cp {
		cp[i].Index = i
	}
	return &Table{rows: cp}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i.
func (t *Table) Row(i int) Record { return t.rows[i] }

// Rows returns a copy of all rows in table order.
func (t *Table) Rows() []Record { return slices.Clone(t.rows) }

// Matrix returns the feature matrix, one canonical-order slice per row.
func (t *Table) Matrix() [][]float64 {
	m := make([][]float64, len(t.rows))
	for i := range t.rows {
		m[i] = t.rows[i].Slice()
	}
	return m
}

// Column returns one float column: "yield", "price" or a FeatureNames entry.
func (t *Table) Column(name string) []float64 {
	out := make([]float64, len(t.rows))
	for i := range t.rows {
		out[i] = t.rows[i].value(name)
	}
	return out
}

// Labels returns the crop name of every row.
func (t *Table) Labels() []string {
	out := make([]string, len(t.rows))
	for i := range t.rows {
		out[i] = t.rows[i].Crop
	}
	return out
}

// Fingerprint returns a stable SHA-256 digest of the table contents. Two
// tables with identical rows in identical order share a fingerprint.
func (t *Table) Fingerprint() string {
	h := sha256.New()
	var buf [8]byte
	for i := range t.rows {
		r := &t.rows[i]
		h.Write([]byte(r.Crop))
		h.Write([]byte{0})
		for _, v := range append([]float64{r.Yield, r.Price}, r.Slice()...) {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (r *Record) value(name string) float64 {
	switch name {
	case "yield":
		return r.Yield
	case "price":
		return r.Price
	case "nitrogen":
		return r.Nitrogen
	case "phosphorus":
		return r.Phosphorus
	case "potassium":
		return r.Potassium
	case "temperature":
		return r.Temperature
	case "humidity":
		return r.Humidity
	case "ph_value":
		return r.PHValue
	case "rainfall":
		return r.Rainfall
	}
	return math.NaN()
}
