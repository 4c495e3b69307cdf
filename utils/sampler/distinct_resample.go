// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrInsufficientRange = errors.New("sample count exceeds range size")

// DistinctSamplesExact returns exactly count distinct integers from
// [loInclusive, hiExclusive) in ascending order.
//
// Unlike DistinctSamples, collisions are resampled until the requested count
// is reached, so the expected number of draws grows as count approaches the
// range size. Returns ErrInsufficientRange when count exceeds the range.
func (s *RandomState) DistinctSamplesExact(loInclusive, hiExclusive, count int) ([]int, error) {
	rangeSize := hiExclusive - loInclusive
	if count > rangeSize {
		return nil, ErrInsufficientRange
	}

	drawn := make(map[int]struct{}, count)
	for len(drawn) < count {
		drawn[s.Intn(rangeSize)] = struct{}{}
	}

	samples := maps.Keys(drawn)
	slices.Sort(samples)
	for i := range samples {
		samples[i] += loInclusive
	}
	return samples, nil
}

// DistinctSamplesExact draws from Global.
func DistinctSamplesExact(loInclusive, hiExclusive, count int) ([]int, error) {
	return Global.DistinctSamplesExact(loInclusive, hiExclusive, count)
}
