// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Batch fills are defined as n independent scalar draws so that, under a
// fixed seed, a batch call produces the same sequence as the equivalent loop
// of scalar calls.

// UniformVector returns n uniform draws from [lo, hi).
func (s *RandomState) UniformVector(n int, lo, hi float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = s.Uniform(lo, hi)
	}
	return v
}

// NormalVector returns n draws from Normal(mean, variance).
func (s *RandomState) NormalVector(n int, mean, variance float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = s.Normal(mean, variance)
	}
	return v
}

// IntVector returns n draws from IntRange(lo, hiExclusive).
func (s *RandomState) IntVector(n, lo, hiExclusive int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = s.IntRange(lo, hiExclusive)
	}
	return v
}
