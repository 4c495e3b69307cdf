// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedFrequencies(t *testing.T) {
	require := require.New(t)

	s := NewRandomState()
	s.Seed(16)
	w := NewWeighted(s, []float64{1, 0, 9})

	counts := make([]int, 3)
	const n = 10000
	for i := 0; i < n; i++ {
		counts[w.Sample()]++
	}

	require.Zero(counts[1])
	require.InDelta(1000, counts[0], 300)
	require.InDelta(9000, counts[2], 300)
}

func TestWeightedDeterminism(t *testing.T) {
	require := require.New(t)

	s := NewRandomState()
	s.Seed(17)
	w := NewWeighted(s, []float64{2.5, 2.5, 5})

	first := make([]int, 20)
	for i := range first {
		first[i] = w.Sample()
	}

	s.Seed(17)
	for i, want := range first {
		require.Equal(want, w.Sample(), "draw %d", i)
	}
}

func TestWeightedSingleElement(t *testing.T) {
	require := require.New(t)

	s := NewRandomState()
	s.Seed(18)
	w := NewWeighted(s, []float64{3.5})

	for i := 0; i < 100; i++ {
		require.Zero(w.Sample())
	}
}
