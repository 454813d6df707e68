// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package ml

import (
	"fmt"
	"slices"
)

// LabelEncoder assigns each distinct label an index in ascending label order.
type LabelEncoder struct {
	Classes []string
}

// Fit learns the label set and returns the encoded labels.
func (e *LabelEncoder) Fit(labels []string) []int {
	classes := slices.Clone(labels)
	slices.Sort(classes)
	e.Classes = slices.Compact(classes)

	out := make([]int, len(labels))
	for i, l := range labels {
		out[i], _ = slices.BinarySearch(e.Classes, l)
	}
	return out
}

// Transform returns the index of label.
func (e *LabelEncoder) Transform(label string) (int, error) {
	i, ok := slices.BinarySearch(e.Classes, label)
	if !ok {
		return 0, fmt.Errorf("unknown label %q", label)
	}
	return i, nil
}

// Inverse returns the label for class index i.
func (e *LabelEncoder) Inverse(i int) (string, error) {
	if i < 0 || i >= len(e.Classes) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", i, len(e.Classes))
	}
	return e.Classes[i], nil
}

// Len returns the number of classes.
func (e *LabelEncoder) Len() int { return len(e.Classes) }
