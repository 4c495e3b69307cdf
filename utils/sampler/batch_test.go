// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformVectorMatchesScalarLoop(t *testing.T) {
	require := require.New(t)

	s1 := NewRandomState()
	s1.Seed(19)
	batch := s1.UniformVector(50, 2, 5)
	require.Len(batch, 50)

	s2 := NewRandomState()
	s2.Seed(19)
	for i, want := range batch {
		require.Equal(want, s2.Uniform(2, 5), "draw %d", i)
	}
}

func TestNormalVectorMatchesScalarLoop(t *testing.T) {
	require := require.New(t)

	s1 := NewRandomState()
	s1.Seed(20)
	batch := s1.NormalVector(50, 5, 2)
	require.Len(batch, 50)

	s2 := NewRandomState()
	s2.Seed(20)
	for i, want := range batch {
		require.Equal(want, s2.Normal(5, 2), "draw %d", i)
	}
}

func TestIntVectorBounds(t *testing.T) {
	require := require.New(t)

	s := NewRandomState()
	s.Seed(21)

	batch := s.IntVector(1000, -3, 4)
	require.Len(batch, 1000)
	for _, v := range batch {
		require.GreaterOrEqual(v, -3)
		require.Less(v, 4)
	}
}
