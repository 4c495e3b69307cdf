// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

// Uniform returns a uniform draw from [lo, hi), computed as a linear
// transform of one raw [0, 1) draw. Bounds are not validated; hi < lo simply
// reflects the interval.
func (s *RandomState) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Uniform01()
}

// Bernoulli returns 1 if a uniform [0, 1) draw is below p and 0 otherwise.
// Values of p outside [0, 1] saturate to an always-0 or always-1 draw.
func (s *RandomState) Bernoulli(p float64) float64 {
	if s.Uniform01() < p {
		return 1
	}
	return 0
}

// Intn returns a uniform integer in [0, hiExclusive), computed as
// floor(hiExclusive * u). The bound is not validated; callers must pass a
// positive bound.
func (s *RandomState) Intn(hiExclusive int) int {
	return int(math.Floor(float64(hiExclusive) * s.Uniform01()))
}

// IntRange returns a uniform integer in [lo, hiExclusive).
func (s *RandomState) IntRange(lo, hiExclusive int) int {
	return lo + int(math.Floor(float64(hiExclusive-lo)*s.Uniform01()))
}

// Normal returns a normal draw computed as variance*Normal01() + mean. The
// scale parameter is named variance for compatibility with existing callers,
// but it multiplies the unit draw directly and therefore acts as a standard
// deviation.
func (s *RandomState) Normal(mean, variance float64) float64 {
	return variance*s.Normal01() + mean
}

// Uniform draws from Global.
func Uniform(lo, hi float64) float64 {
	return Global.Uniform(lo, hi)
}

// Bernoulli draws from Global.
func Bernoulli(p float64) float64 {
	return Global.Bernoulli(p)
}

// Intn draws from Global.
func Intn(hiExclusive int) int {
	return Global.Intn(hiExclusive)
}

// IntRange draws from Global.
func IntRange(lo, hiExclusive int) int {
	return Global.IntRange(lo, hiExclusive)
}

// Normal draws from Global.
func Normal(mean, variance float64) float64 {
	return Global.Normal(mean, variance)
}
