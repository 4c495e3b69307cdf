// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Weighted samples indices of a fixed weight vector in proportion to their
// weights. Weights must be non-empty and non-negative with a positive total;
// as everywhere in this package, that is the caller's responsibility.
//
// Initialization takes O(n) time. Sampling takes O(log(n)) time and consumes
// one uniform draw.
type Weighted struct {
	state *RandomState
	cdf   []float64
}

// NewWeighted builds a weighted index sampler drawing from state.
func NewWeighted(state *RandomState, weights []float64) *Weighted {
	cdf := make([]float64, len(weights))
	floats.CumSum(cdf, weights)
	return &Weighted{
		state: state,
		cdf:   cdf,
	}
}

// Sample returns i with probability weights[i] / sum(weights). Indices with
// zero weight are never returned.
func (w *Weighted) Sample() int {
	total := w.cdf[len(w.cdf)-1]
	value := w.state.Uniform(0, total)
	return sort.Search(len(w.cdf), func(i int) bool {
		return value < w.cdf[i]
	})
}
