// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package predictor

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/dataset"
)

// foldName returns the case-insensitive lookup key for a crop name.
// Casers keep internal state, so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// titleName capitalizes the first letter of every word and lowercases the
// rest, the form in which crop names are echoed back to callers.
func titleName(name string) string {
	return cases.Title(language.Und).String(name)
}

// Crops returns the distinct crop names in ascending order.
func (s *Store) Crops() ([]string, error) {
	if s == nil || s.table == nil {
		return nil, apperrors.ErrNotReady
	}
	names := make([]string, 0, len(s.byCrop))
	for name := range s.byCrop {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// match returns the row indices whose crop name equals name ignoring case.
func (s *Store) match(name string) ([]int, error) {
	if s == nil || s.table == nil {
		return nil, apperrors.ErrNotReady
	}
	rows := s.byFolded[foldName(name)]
	if len(rows) == 0 {
		return nil, fmt.Errorf("crop %q: %w", name, apperrors.ErrNotFound)
	}
	return rows, nil
}

// History returns aggregate yield and price figures for a crop together with
// its most recent HistoryLimit rows in table order.
func (s *Store) History(name string) (*History, error) {
	rows, err := s.match(name)
	if err != nil {
		return nil, err
	}

	h := &History{
		Crop:         titleName(name),
		TotalRecords: len(rows),
	}

	first := s.table.Row(rows[0])
	h.MinYield, h.MaxYield = first.Yield, first.Yield
	h.MinPrice, h.MaxPrice = first.Price, first.Price

	var sumYield, sumPrice float64
	for _, i := range rows {
		r := s.table.Row(i)
		sumYield += r.Yield
		sumPrice += r.Price
		h.MinYield = min(h.MinYield, r.Yield)
		h.MaxYield = max(h.MaxYield, r.Yield)
		h.MinPrice = min(h.MinPrice, r.Price)
		h.MaxPrice = max(h.MaxPrice, r.Price)
	}
	n := float64(len(rows))
	h.AvgYield = sumYield / n
	h.AvgPrice = sumPrice / n

	recent := rows[max(0, len(rows)-HistoryLimit):]
	h.Points = make([]HistoryPoint, 0, len(recent))
	for _, i := range recent {
		r := s.table.Row(i)
		h.Points = append(h.Points, HistoryPoint{
			Index:       r.Index,
			Yield:       r.Yield,
			Price:       r.Price,
			Rainfall:    r.Rainfall,
			Temperature: r.Temperature,
		})
	}
	return h, nil
}

// Info returns mean economics and mean growing conditions for a crop.
func (s *Store) Info(name string) (*Info, error) {
	rows, err := s.match(name)
	if err != nil {
		return nil, err
	}

	var sumYield, sumPrice, sumRevenue float64
	sums := make([]float64, dataset.NumFeatures)
	for _, i := range rows {
		r := s.table.Row(i)
		sumYield += r.Yield
		sumPrice += r.Price
		sumRevenue += Revenue(r.Yield, r.Price)
		for j, v := range r.Slice() {
			sums[j] += v
		}
	}

	n := float64(len(rows))
	for j := range sums {
		sums[j] /= n
	}

	return &Info{
		Crop:              titleName(name),
		AvgYield:          sumYield / n,
		AvgPrice:          sumPrice / n,
		AvgRevenue:        sumRevenue / n,
		TotalRecords:      len(rows),
		OptimalConditions: dataset.FeatureVectorFromSlice(sums),
	}, nil
}
