// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package noise generates reproducible batches of pseudo-random
// tensors for iterative image-sampling pipelines. A batch-shaped draw
// is partitioned across an ordered list of independently seeded
// streams, one per sample, so that each sample's noise depends only on
// its own stream no matter how the batch is sized or ordered. The
// [Override] type substitutes this scheme for the ordinary like-shaped
// draws of a pipeline, and [Tracker] flags any draw that bypassed
// explicit seeding.
package noise

import (
	"github.com/noisefold/core/base/randx"
	"github.com/noisefold/core/tensor"
)

// Stream is a seeded random source bound to one compute device.
// A caller creates streams before a batch begins and owns them for the
// duration of a generation run; draws advance the stream's sequence
// position, so the same stream must not be drawn from concurrently.
type Stream struct {
	// Rand is the underlying reproducible source.
	Rand randx.Rand

	// Device is where slices drawn from this stream are materialized.
	Device tensor.Device
}

// NewStream returns a new [Stream] with the given seed, bound to the
// given device.
func NewStream(seed int64, device tensor.Device) *Stream {
	return &Stream{Rand: randx.NewSysRand(seed), Device: device.Canon()}
}

// Seed resets the stream to the deterministic state for the given seed.
func (st *Stream) Seed(seed int64) { st.Rand.Seed(seed) }

// StreamList is the ordered set of per-sample streams for one batch.
// Batched draws assign stream i mod len(list) to the i-th sample, so
// the order of the list determines which sample gets which values.
type StreamList []*Stream

// NewStreams returns a [StreamList] with one stream per given seed,
// all bound to the given device. [randx.Seeds] expands directly into
// the seeds argument.
func NewStreams(device tensor.Device, seeds ...int64) StreamList {
	sl := make(StreamList, len(seeds))
	for i, seed := range seeds {
		sl[i] = NewStream(seed, device)
	}
	return sl
}

// Seed re-seeds the streams in order with the given seeds, restoring
// the deterministic state to reproduce a prior run. Extra seeds beyond
// the list length are ignored.
func (sl StreamList) Seed(seeds ...int64) {
	for i, st := range sl {
		if i >= len(seeds) {
			return
		}
		st.Seed(seeds[i])
	}
}
