// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// DistinctSamples returns up to maxNumSamples distinct integers from
// [loInclusive, hiExclusive) in ascending order.
//
// When the range is larger than maxNumSamples, candidate positions are drawn
// with replacement and deduplicated: maxNumSamples bounds the number of
// draws, not the size of the result, so collisions typically leave the
// result smaller than maxNumSamples. Callers that need an exact count should
// use DistinctSamplesExact instead.
//
// When the range fits within maxNumSamples the entire range is returned.
//
// The sparse branch runs in O(rangeSize + maxNumSamples) time.
func (s *RandomState) DistinctSamples(loInclusive, hiExclusive, maxNumSamples int) []int {
	rangeSize := hiExclusive - loInclusive

	if rangeSize > maxNumSamples {
		counts := make([]int, rangeSize)
		for i := 0; i < maxNumSamples; i++ {
			counts[s.Intn(rangeSize)]++
		}

		var samples []int
		for pos, count := range counts {
			if count > 0 {
				samples = append(samples, loInclusive+pos)
			}
		}
		return samples
	}

	var samples []int
	for i := 0; i < rangeSize; i++ {
		samples = append(samples, loInclusive+i)
	}
	return samples
}

// DistinctSamples draws from Global.
func DistinctSamples(loInclusive, hiExclusive, maxNumSamples int) []int {
	return Global.DistinctSamples(loInclusive, hiExclusive, maxNumSamples)
}
