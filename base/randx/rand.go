// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides reproducible pseudo-random sources for
// seeded sampling. The [Rand] interface covers the draw primitives
// used by batched noise generation, and [SysRand] implements it over
// either a private rand.Rand source or the global rand stream.
package randx

import "math/rand"

// Rand is the interface for a pseudo-random source. It mirrors the
// standard rand.Rand methods needed for sampling, so that either the
// global rand stream or an independently seeded source can be used.
// Draws advance the source's sequence position and are therefore
// order-dependent; a source must not be drawn from concurrently.
type Rand interface {
	// Seed initializes the source to a deterministic state.
	// Seed must not be called concurrently with any other method.
	Seed(seed int64)

	// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
	Int63() int64

	// Uint64 returns a pseudo-random 64-bit value as a uint64.
	Uint64() uint64

	// Int63n returns, as an int64, a non-negative pseudo-random number
	// in the half-open interval [0,n). It panics if n <= 0.
	Int63n(n int64) int64

	// Intn returns, as an int, a non-negative pseudo-random number
	// in the half-open interval [0,n). It panics if n <= 0.
	Intn(n int) int

	// Float64 returns, as a float64, a pseudo-random number in the
	// half-open interval [0.0,1.0).
	Float64() float64

	// Float32 returns, as a float32, a pseudo-random number in the
	// half-open interval [0.0,1.0).
	Float32() float32

	// NormFloat64 returns a normally distributed float64
	// with mean = 0 and stddev = 1.
	NormFloat64() float64

	// Perm returns, as a slice of n ints, a pseudo-random permutation
	// of the integers in the half-open interval [0,n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements using
	// the given swap function. It panics if n < 0.
	Shuffle(n int, swap func(i, j int))
}

// SysRand implements [Rand] using either a separate rand.Rand source,
// or, if that is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new [SysRand] that uses the
// system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new [SysRand] with its own rand.Rand
// source initialized to the given seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Seed initializes the source to a deterministic state.
// A nil source is replaced by a new private one, so that seeding
// never perturbs the global stream.
func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		r.NewRand(seed)
		return
	}
	r.Rand.Seed(seed)
}

// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
func (r *SysRand) Int63() int64 {
	if r.Rand == nil {
		return rand.Int63()
	}
	return r.Rand.Int63()
}

// Uint64 returns a pseudo-random 64-bit value as a uint64.
func (r *SysRand) Uint64() uint64 {
	if r.Rand == nil {
		return rand.Uint64()
	}
	return r.Rand.Uint64()
}

// Int63n returns, as an int64, a non-negative pseudo-random number
// in the half-open interval [0,n). It panics if n <= 0.
func (r *SysRand) Int63n(n int64) int64 {
	if r.Rand == nil {
		return rand.Int63n(n)
	}
	return r.Rand.Int63n(n)
}

// Intn returns, as an int, a non-negative pseudo-random number
// in the half-open interval [0,n). It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in the
// half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Float32 returns, as a float32, a pseudo-random number in the
// half-open interval [0.0,1.0).
func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

// NormFloat64 returns a normally distributed float64
// with mean = 0 and stddev = 1.
func (r *SysRand) NormFloat64() float64 {
	if r.Rand == nil {
		return rand.NormFloat64()
	}
	return r.Rand.NormFloat64()
}

// Perm returns, as a slice of n ints, a pseudo-random permutation
// of the integers in the half-open interval [0,n).
func (r *SysRand) Perm(n int) []int {
	if r.Rand == nil {
		return rand.Perm(n)
	}
	return r.Rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements using
// the given swap function. It panics if n < 0.
func (r *SysRand) Shuffle(n int, swap func(i, j int)) {
	if r.Rand == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Rand.Shuffle(n, swap)
}
