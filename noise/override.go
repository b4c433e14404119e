// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"reflect"

	"github.com/noisefold/core/tensor"
)

// Override is an [Engine] bound to a [StreamList] that substitutes
// batched per-stream draws for the like-shaped operations of a
// pipeline, whenever the input's batch size is an exact multiple of
// the stream count. Incompatible batch sizes fall back transparently
// to the embedded engine without consulting any stream, as do all
// operations not overridden here, so an Override is a drop-in superset
// of the ordinary engine.
type Override struct {
	// Engine is the underlying engine; non-overridden operations and
	// fallbacks delegate to it.
	Engine

	// Streams is the ordered per-sample stream list for the batch.
	Streams StreamList
}

// NewOverride returns a new [Override] over the given engine
// ([Default] if nil) bound to the given streams.
func NewOverride(eng Engine, streams StreamList) *Override {
	if eng == nil {
		eng = Default
	}
	return &Override{Engine: eng, Streams: streams}
}

// RandnLike draws a [Normal] tensor mirroring the input's shape, as a
// batched per-stream draw when the input's batch size is a multiple of
// the stream count, falling back to the underlying engine otherwise.
// A zero device or reflect.Invalid dtype inherits from the input.
func (ov *Override) RandnLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	g := len(ov.Streams)
	if g == 0 || input.DimSize(0)%g != 0 {
		return ov.Engine.RandnLike(input, device, dtype, stream...)
	}
	device, dtype = likeParams(input, device, dtype)
	return Draw(DrawRequest{Sizes: input.Shape().Sizes, Device: device, Dtype: dtype, Kind: Normal}, ov.Streams)
}

// RandIntLike draws an [Integer] tensor in [low,high) mirroring the
// input's cell shape. Integer draws are keyed by stream index, not
// batch position: when the input's batch size is a multiple of the
// stream count, the batched path draws exactly one slice per stream,
// in stream-list order, so the result has one row per stream
// regardless of the input batch size. Incompatible batch sizes fall
// back to the underlying engine.
func (ov *Override) RandIntLike(input tensor.Tensor, low, high int64, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	g := len(ov.Streams)
	if g == 0 || input.DimSize(0)%g != 0 {
		return ov.Engine.RandIntLike(input, low, high, device, dtype, stream...)
	}
	device, dtype = likeParams(input, device, dtype)
	cells := tensor.CellsSizes(input.Shape().Sizes)
	slices := make([]tensor.Tensor, g)
	for i, st := range ov.Streams {
		sl, err := newFilled(st.Rand, append([]int{1}, cells...), st.Device, dtype, Integer, low, high)
		if err != nil {
			return nil, err
		}
		slices[i] = sl
	}
	out, err := tensor.CatRows(slices...)
	if err != nil {
		return nil, err
	}
	return tensor.To(out, device), nil
}
