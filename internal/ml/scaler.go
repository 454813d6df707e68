// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package ml

import (
	"errors"
	"fmt"
	"math"
)

// StandardScaler centers each feature on its mean and divides by its
// population standard deviation. Constant features keep a scale of 1.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// ErrNoSamples is returned when an estimator is fitted on an empty matrix.
var ErrNoSamples = errors.New("no samples")

// Fit learns per-feature mean and scale from x.
func (s *StandardScaler) Fit(x [][]float64) error {
	if len(x) == 0 {
		return ErrNoSamples
	}
	width := len(x[0])
	mean := make([]float64, width)
	for _, row := range x {
		if len(row) != width {
			return fmt.Errorf("ragged matrix: row has %d features, want %d", len(row), width)
		}
		for j, v := range row {
			mean[j] += v
		}
	}
	n := float64(len(x))
	for j := range mean {
		mean[j] /= n
	}

	scale := make([]float64, width)
	for _, row := range x {
		for j, v := range row {
			d := v - mean[j]
			scale[j] += d * d
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / n)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}

	s.Mean, s.Scale = mean, scale
	return nil
}

// Transform returns a scaled copy of v.
func (s *StandardScaler) Transform(v []float64) []float64 {
	out := make([]float64, len(v))
	for j := range v {
		out[j] = (v[j] - s.Mean[j]) / s.Scale[j]
	}
	return out
}

// TransformAll scales every row of x.
func (s *StandardScaler) TransformAll(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = s.Transform(row)
	}
	return out
}
