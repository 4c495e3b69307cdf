// Copyright (C) 2024-2026, Treeline ML, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler provides the process-wide pseudo-random facility used by
// the rest of the library: a seedable generator, uniform and normal draw
// primitives, and bounded distinct-index sampling over integer ranges.
//
// A RandomState performs no locking of its own. Draw sequences are
// reproducible only for single-threaded, sequential use following a call to
// Seed; callers sharing one state across goroutines must serialize access or
// give each worker its own state. The generator is not cryptographically
// secure.
//
// Operations do not validate their numeric inputs. Inverted bounds,
// non-positive range sizes, and probabilities outside [0, 1] propagate
// through the arithmetic documented on each operation; rejecting them is the
// caller's job.
package sampler

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	exprand "golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Global is the default process-wide random state. Library code draws from
// it unless a caller injects its own state.
var Global = NewRandomState()

var logger = zap.NewNop()

// SetLogger replaces the package logger. The default discards all output.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Source produces the raw random bits used to build every distribution.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
	Seed(uint64)
}

// RandomState owns a raw-bit engine and the two canonical distributions all
// sampling operations derive from: uniform over [0, 1) and the standard
// normal. The distribution parameters are fixed at construction; ranged,
// scaled, and shifted variants are computed by arithmetic on the raw draw,
// never by reparameterizing the distributions.
type RandomState struct {
	src     Source
	uniform distuv.Uniform
	normal  distuv.Normal
}

// NewRandomState returns a state backed by a fresh MT19937 engine seeded
// from the wall clock. Call Seed for reproducible sequences.
func NewRandomState() *RandomState {
	src := prng.NewMT19937()
	src.Seed(uint64(time.Now().UnixNano()))
	return NewRandomStateFromSource(src)
}

// NewRandomStateFromSource returns a state drawing from the provided engine.
func NewRandomStateFromSource(src Source) *RandomState {
	return &RandomState{
		src:     src,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Seed reseeds the engine from the low 32 bits of seed. The wider parameter
// keeps the API uniform across callers; truncation is silent and
// deterministic, so any input is accepted. Seed also reseeds the legacy
// process-wide math/rand generator and the numerical library's global
// source, keeping every random subsystem in lockstep under one seed.
func (s *RandomState) Seed(seed uint64) {
	truncated := uint64(uint32(seed))
	s.src.Seed(truncated)
	rand.Seed(int64(truncated))
	exprand.Seed(truncated)
	logger.Debug("reseeded random subsystems",
		zap.Uint64("seed", truncated),
	)
}

// Uniform01 returns the next draw from the uniform distribution over [0, 1).
func (s *RandomState) Uniform01() float64 {
	return s.uniform.Rand()
}

// Normal01 returns the next draw from the standard normal distribution.
func (s *RandomState) Normal01() float64 {
	return s.normal.Rand()
}

// Seed reseeds Global and the collaborating random subsystems.
func Seed(seed uint64) {
	Global.Seed(seed)
}

// Uniform01 draws from Global.
func Uniform01() float64 {
	return Global.Uniform01()
}

// Normal01 draws from Global.
func Normal01() float64 {
	return Global.Normal01()
}
