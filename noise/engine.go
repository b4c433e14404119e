// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"reflect"

	"github.com/noisefold/core/base/randx"
	"github.com/noisefold/core/tensor"
)

// Engine is the ordinary source of random tensors used throughout a
// generation pipeline: shaped draws and like-shaped draws mirroring an
// existing tensor's shape, device and element type. The optional
// trailing stream argument supplies an explicit seeded source for one
// call; without it the draw is unseeded and not reproducible.
// [PlainEngine] is the base implementation; [Override] redirects the
// like-shaped operations to batched per-stream draws, and [Tracker]
// instruments all six operations with non-determinism warnings.
type Engine interface {
	// Rand draws a [Uniform] tensor of the given shape.
	Rand(sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error)

	// RandLike draws a [Uniform] tensor mirroring the input's shape.
	// A zero device or reflect.Invalid dtype inherits from the input.
	RandLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error)

	// Randn draws a [Normal] tensor of the given shape.
	Randn(sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error)

	// RandnLike draws a [Normal] tensor mirroring the input's shape.
	// A zero device or reflect.Invalid dtype inherits from the input.
	RandnLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error)

	// RandInt draws an [Integer] tensor in [low,high) of the given shape.
	RandInt(low, high int64, sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error)

	// RandIntLike draws an [Integer] tensor in [low,high) mirroring the
	// input's shape. A zero device or reflect.Invalid dtype inherits
	// from the input.
	RandIntLike(input tensor.Tensor, low, high int64, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error)
}

// Default is the process-wide engine for pipelines that do not
// construct their own. [InstallTracker] wraps it in place.
var Default Engine = NewEngine(nil)

// PlainEngine implements [Engine] with ordinary unseeded draws from a
// fallback source, or from the explicit per-call stream when one is
// supplied.
type PlainEngine struct {
	// Rnd is the fallback source for calls without an explicit stream.
	Rnd randx.Rand
}

// NewEngine returns a new [PlainEngine] drawing from the given
// fallback source, or from the global rand stream if nil.
func NewEngine(rnd randx.Rand) *PlainEngine {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return &PlainEngine{Rnd: rnd}
}

// Rand draws a [Uniform] tensor of the given shape.
func (pe *PlainEngine) Rand(sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	return newFilled(pe.src(stream), sizes, device, dtype, Uniform, 0, 0)
}

// RandLike draws a [Uniform] tensor mirroring the input's shape.
func (pe *PlainEngine) RandLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	device, dtype = likeParams(input, device, dtype)
	return newFilled(pe.src(stream), input.Shape().Sizes, device, dtype, Uniform, 0, 0)
}

// Randn draws a [Normal] tensor of the given shape.
func (pe *PlainEngine) Randn(sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	return newFilled(pe.src(stream), sizes, device, dtype, Normal, 0, 0)
}

// RandnLike draws a [Normal] tensor mirroring the input's shape.
func (pe *PlainEngine) RandnLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	device, dtype = likeParams(input, device, dtype)
	return newFilled(pe.src(stream), input.Shape().Sizes, device, dtype, Normal, 0, 0)
}

// RandInt draws an [Integer] tensor in [low,high) of the given shape.
func (pe *PlainEngine) RandInt(low, high int64, sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	return newFilled(pe.src(stream), sizes, device, dtype, Integer, low, high)
}

// RandIntLike draws an [Integer] tensor in [low,high) mirroring the
// input's shape.
func (pe *PlainEngine) RandIntLike(input tensor.Tensor, low, high int64, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	device, dtype = likeParams(input, device, dtype)
	return newFilled(pe.src(stream), input.Shape().Sizes, device, dtype, Integer, low, high)
}

// src returns the source for one call: the explicit stream when given,
// the fallback otherwise.
func (pe *PlainEngine) src(stream []*Stream) randx.Rand {
	if len(stream) > 0 && stream[0] != nil {
		return stream[0].Rand
	}
	return pe.Rnd
}

// likeParams resolves the device and element type of a like-shaped
// draw: unset values inherit from the input tensor.
func likeParams(input tensor.Tensor, device tensor.Device, dtype reflect.Kind) (tensor.Device, reflect.Kind) {
	if device.IsNil() {
		device = input.Device()
	}
	if dtype == reflect.Invalid {
		dtype = input.DataType()
	}
	return device, dtype
}
