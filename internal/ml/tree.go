// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package ml

import (
	"math/rand"
	"slices"
)

// Node is one node of a fitted tree stored in a flat slice. Leaves have
// Feature == -1 and carry Value: class probabilities for a classifier, a
// single mean for a regressor.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     []float64
}

// Tree is a fitted CART tree. Node 0 is the root.
type Tree struct {
	Nodes []Node
}

// leaf walks x down the tree and returns the value of the reached leaf.
// Samples with x[feature] <= threshold go left.
func (t *Tree) leaf(x []float64) []float64 {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var walk func(i int) int
	walk = func(i int) int {
		n := &t.Nodes[i]
		if n.Feature < 0 {
			return 0
		}
		return 1 + max(walk(n.Left), walk(n.Right))
	}
	return walk(0)
}

// treeBuilder grows one tree. Exactly one of classes or targets is set.
type treeBuilder struct {
	x          [][]float64
	classes    []int
	numClasses int
	targets    []float64

	maxFeatures     int
	maxDepth        int
	minSamplesSplit int

	rng   *rand.Rand
	nodes []Node
}

func (b *treeBuilder) classification() bool { return b.classes != nil }

func (b *treeBuilder) grow(samples []int) Tree {
	b.nodes = b.nodes[:0]
	b.build(samples, 0)
	return Tree{Nodes: slices.Clip(b.nodes)}
}

func (b *treeBuilder) build(samples []int, depth int) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: -1})

	if b.isLeaf(samples, depth) {
		b.nodes[id].Value = b.leafValue(samples)
		return id
	}

	feature, threshold, ok := b.bestSplit(samples)
	if !ok {
		b.nodes[id].Value = b.leafValue(samples)
		return id
	}

	left := make([]int, 0, len(samples))
	right := make([]int, 0, len(samples))
	for _, s := range samples {
		if b.x[s][feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	l := b.build(left, depth+1)
	r := b.build(right, depth+1)
	b.nodes[id] = Node{Feature: feature, Threshold: threshold, Left: l, Right: r}
	return id
}

func (b *treeBuilder) isLeaf(samples []int, depth int) bool {
	if len(samples) < b.minSamplesSplit || len(samples) < 2 {
		return true
	}
	if b.maxDepth > 0 && depth >= b.maxDepth {
		return true
	}
	if b.classification() {
		first := b.classes[samples[0]]
		for _, s := range samples[1:] {
			if b.classes[s] != first {
				return false
			}
		}
		return true
	}
	first := b.targets[samples[0]]
	for _, s := range samples[1:] {
		if b.targets[s] != first {
			return false
		}
	}
	return true
}

func (b *treeBuilder) leafValue(samples []int) []float64 {
	if b.classification() {
		probs := make([]float64, b.numClasses)
		for _, s := range samples {
			probs[b.classes[s]]++
		}
		n := float64(len(samples))
		for i := range probs {
			probs[i] /= n
		}
		return probs
	}
	var sum float64
	for _, s := range samples {
		sum += b.targets[s]
	}
	return []float64{sum / float64(len(samples))}
}

// bestSplit draws features in random order and evaluates at least
// maxFeatures non-constant ones, continuing past that budget only while no
// valid split has been found.
func (b *treeBuilder) bestSplit(samples []int) (feature int, threshold float64, ok bool) {
	width := len(b.x[samples[0]])
	order := b.rng.Perm(width)
	sorted := make([]int, len(samples))

	best := 0.0
	visited := 0
	for _, f := range order {
		if visited >= b.maxFeatures && ok {
			break
		}

		copy(sorted, samples)
		slices.SortStableFunc(sorted, func(i, j int) int {
			switch xi, xj := b.x[i][f], b.x[j][f]; {
			case xi < xj:
				return -1
			case xi > xj:
				return 1
			}
			return 0
		})
		if b.x[sorted[0]][f] == b.x[sorted[len(sorted)-1]][f] {
			continue
		}
		visited++

		var imp, thr float64
		var found bool
		if b.classification() {
			imp, thr, found = b.sweepGini(sorted, f)
		} else {
			imp, thr, found = b.sweepSquaredError(sorted, f)
		}
		if found && (!ok || imp < best) {
			best, feature, threshold, ok = imp, f, thr, true
		}
	}
	return feature, threshold, ok
}

// sweepGini scans split positions over samples sorted by feature f and
// returns the lowest weighted Gini impurity n_l*G_l + n_r*G_r.
func (b *treeBuilder) sweepGini(sorted []int, f int) (float64, float64, bool) {
	left := make([]float64, b.numClasses)
	right := make([]float64, b.numClasses)
	for _, s := range sorted {
		right[b.classes[s]]++
	}
	var leftSq, rightSq float64
	for _, c := range right {
		rightSq += c * c
	}

	n := len(sorted)
	best, thr, found := 0.0, 0.0, false
	for i := 0; i < n-1; i++ {
		c := b.classes[sorted[i]]
		leftSq += 2*left[c] + 1
		left[c]++
		rightSq -= 2*right[c] - 1
		right[c]--

		v, next := b.x[sorted[i]][f], b.x[sorted[i+1]][f]
		if v == next {
			continue
		}
		nl, nr := float64(i+1), float64(n-i-1)
		imp := (nl - leftSq/nl) + (nr - rightSq/nr)
		if !found || imp < best {
			best, thr, found = imp, midpoint(v, next), true
		}
	}
	return best, thr, found
}

// sweepSquaredError is sweepGini for regression: it minimizes the summed
// squared error of both children.
func (b *treeBuilder) sweepSquaredError(sorted []int, f int) (float64, float64, bool) {
	var totalSum, totalSq float64
	for _, s := range sorted {
		y := b.targets[s]
		totalSum += y
		totalSq += y * y
	}

	n := len(sorted)
	var leftSum, leftSq float64
	best, thr, found := 0.0, 0.0, false
	for i := 0; i < n-1; i++ {
		y := b.targets[sorted[i]]
		leftSum += y
		leftSq += y * y

		v, next := b.x[sorted[i]][f], b.x[sorted[i+1]][f]
		if v == next {
			continue
		}
		nl, nr := float64(i+1), float64(n-i-1)
		rightSum, rightSq := totalSum-leftSum, totalSq-leftSq
		imp := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
		if !found || imp < best {
			best, thr, found = imp, midpoint(v, next), true
		}
	}
	return best, thr, found
}

// midpoint returns the split threshold between two adjacent distinct values.
// Rounding can push the midpoint onto hi, which would send hi left.
func midpoint(lo, hi float64) float64 {
	m := lo + (hi-lo)/2
	if m >= hi {
		return lo
	}
	return m
}
