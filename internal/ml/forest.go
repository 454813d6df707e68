// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package ml

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForestConfig configures a random forest.
type ForestConfig struct {
	// Trees is the number of trees. Default: 100.
	Trees int

	// MaxDepth limits tree depth. 0 grows trees until leaves are pure.
	MaxDepth int

	// MinSamplesSplit is the smallest node that may be split. Default: 2.
	MinSamplesSplit int

	// MaxFeatures is the number of features evaluated per split. 0 selects
	// floor(sqrt(width)) for classifiers and width for regressors.
	MaxFeatures int

	// Bootstrap draws each tree's sample with replacement.
	Bootstrap bool

	// Seed makes training reproducible. Default: 42.
	Seed int64

	// Workers bounds concurrent tree construction. 0 uses GOMAXPROCS.
	Workers int
}

// DefaultForestConfig returns the settings the service trains with.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:           100,
		MinSamplesSplit: 2,
		Bootstrap:       true,
		Seed:            42,
	}
}

func (c ForestConfig) withDefaults() ForestConfig {
	if c.Trees <= 0 {
		c.Trees = 100
	}
	if c.MinSamplesSplit < 2 {
		c.MinSamplesSplit = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// RandomForestClassifier averages class probabilities over bagged trees.
type RandomForestClassifier struct {
	Config     ForestConfig
	NumClasses int
	Trees      []Tree
}

// NewRandomForestClassifier returns an unfitted classifier.
func NewRandomForestClassifier(cfg ForestConfig) *RandomForestClassifier {
	return &RandomForestClassifier{Config: cfg.withDefaults()}
}

// Fit trains on x with labels y in [0, numClasses).
func (c *RandomForestClassifier) Fit(ctx context.Context, x [][]float64, y []int, numClasses int) error {
	if err := checkShape(x, len(y)); err != nil {
		return err
	}
	for i, label := range y {
		if label < 0 || label >= numClasses {
			return fmt.Errorf("label %d at row %d out of range [0,%d)", label, i, numClasses)
		}
	}

	maxFeatures := c.Config.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = max(1, int(math.Sqrt(float64(len(x[0])))))
	}

	trees, err := growForest(ctx, c.Config, len(x), func(rng *rand.Rand) *treeBuilder {
		return &treeBuilder{
			x:               x,
			classes:         y,
			numClasses:      numClasses,
			maxFeatures:     maxFeatures,
			maxDepth:        c.Config.MaxDepth,
			minSamplesSplit: c.Config.MinSamplesSplit,
			rng:             rng,
		}
	})
	if err != nil {
		return err
	}

	c.NumClasses = numClasses
	c.Trees = trees
	return nil
}

// Fitted reports whether Fit has completed.
func (c *RandomForestClassifier) Fitted() bool { return len(c.Trees) > 0 }

// PredictProba returns the mean class distribution across trees.
func (c *RandomForestClassifier) PredictProba(x []float64) []float64 {
	probs := make([]float64, c.NumClasses)
	for i := range c.Trees {
		for k, p := range c.Trees[i].leaf(x) {
			probs[k] += p
		}
	}
	n := float64(len(c.Trees))
	for k := range probs {
		probs[k] /= n
	}
	return probs
}

// Predict returns the most probable class. The lowest index wins ties.
func (c *RandomForestClassifier) Predict(x []float64) int {
	return Argmax(c.PredictProba(x))
}

// RandomForestRegressor averages leaf means over bagged trees.
type RandomForestRegressor struct {
	Config ForestConfig
	Trees  []Tree
}

// NewRandomForestRegressor returns an unfitted regressor.
func NewRandomForestRegressor(cfg ForestConfig) *RandomForestRegressor {
	return &RandomForestRegressor{Config: cfg.withDefaults()}
}

// Fit trains on x with targets y.
func (r *RandomForestRegressor) Fit(ctx context.Context, x [][]float64, y []float64) error {
	if err := checkShape(x, len(y)); err != nil {
		return err
	}

	maxFeatures := r.Config.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = len(x[0])
	}

	trees, err := growForest(ctx, r.Config, len(x), func(rng *rand.Rand) *treeBuilder {
		return &treeBuilder{
			x:               x,
			targets:         y,
			maxFeatures:     maxFeatures,
			maxDepth:        r.Config.MaxDepth,
			minSamplesSplit: r.Config.MinSamplesSplit,
			rng:             rng,
		}
	})
	if err != nil {
		return err
	}
	r.Trees = trees
	return nil
}

// Fitted reports whether Fit has completed.
func (r *RandomForestRegressor) Fitted() bool { return len(r.Trees) > 0 }

// Predict returns the mean prediction of all trees.
func (r *RandomForestRegressor) Predict(x []float64) float64 {
	var sum float64
	for i := range r.Trees {
		sum += r.Trees[i].leaf(x)[0]
	}
	return sum / float64(len(r.Trees))
}

// Argmax returns the index of the largest value, preferring the lowest index.
func Argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func checkShape(x [][]float64, targets int) error {
	if len(x) == 0 {
		return ErrNoSamples
	}
	if len(x) != targets {
		return fmt.Errorf("have %d samples but %d targets", len(x), targets)
	}
	width := len(x[0])
	if width == 0 {
		return errors.New("samples have no features")
	}
	for i, row := range x {
		if len(row) != width {
			return fmt.Errorf("row %d has %d features, want %d", i, len(row), width)
		}
	}
	return nil
}

// growForest builds cfg.Trees trees concurrently. Per-tree seeds are drawn
// from cfg.Seed before any tree starts so the result does not depend on
// scheduling.
func growForest(ctx context.Context, cfg ForestConfig, n int, newBuilder func(*rand.Rand) *treeBuilder) ([]Tree, error) {
	master := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic training, not security
	seeds := make([]int64, cfg.Trees)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	trees := make([]Tree, cfg.Trees)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range trees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seeds[i])) //nolint:gosec // deterministic training, not security
			samples := make([]int, n)
			if cfg.Bootstrap {
				for j := range samples {
					samples[j] = rng.Intn(n)
				}
			} else {
				for j := range samples {
					samples[j] = j
				}
			}
			trees[i] = newBuilder(rng).grow(samples)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("grow forest: %w", err)
	}
	return trees, nil
}
