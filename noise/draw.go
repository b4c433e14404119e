// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/noisefold/core/base/randx"
	"github.com/noisefold/core/tensor"
)

var (
	// ErrInvalidBatchSize is returned when the batch dimension of a
	// draw is not an exact multiple of the stream count.
	ErrInvalidBatchSize = errors.New("batch size is not a multiple of the number of streams")

	// ErrUnsupportedDrawKind is returned when the requested draw kind
	// is not one of [Uniform], [Normal], [Integer].
	ErrUnsupportedDrawKind = errors.New("unsupported draw kind")
)

// Kind is the kind of distribution or value range a draw requests.
type Kind int32

const (
	// Uniform draws continuous values in the half-open interval [0,1).
	Uniform Kind = iota

	// Normal draws values with mean = 0 and stddev = 1.
	Normal

	// Integer draws integers in the half-open interval [Low,High).
	Integer
)

// String satisfies the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	case Integer:
		return "integer"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// DrawRequest is one batch-shaped draw: the full shape including the
// leading batch dimension, the target device and element type of the
// result, the draw kind, and the bounds for [Integer] draws.
// It exists only for the duration of one call.
type DrawRequest struct {
	// Sizes is the full result shape; Sizes[0] is the batch size.
	Sizes []int

	// Device is the target device of the result. The assembled batch
	// is transferred there after the per-stream slices are drawn on
	// their own devices; the zero value reads as [tensor.CPU].
	Device tensor.Device

	// Dtype is the element type of the result; reflect.Invalid
	// defaults to float32.
	Dtype reflect.Kind

	// Kind is the draw kind.
	Kind Kind

	// Low and High bound [Integer] draws to [Low,High); Low defaults
	// to 0. High must be greater than Low or the draw panics, matching
	// math/rand bounds handling.
	Low, High int64
}

// Draw performs one batch-shaped draw partitioned across the given
// streams: stream i mod len(streams) draws the single-sample slice for
// the i-th sample, in ascending index order, on the stream's own
// device, and the slices are concatenated along the batch axis and
// transferred to the requested device. It fails with
// [ErrInvalidBatchSize] when the batch size is not an exact multiple
// of the stream count. For fixed stream states and a fixed request the
// output is byte-for-byte identical across calls; each assigned stream
// advances by exactly one slice draw per assigned sample, independent
// of the other streams.
func Draw(req DrawRequest, streams StreamList) (tensor.Tensor, error) {
	if len(req.Sizes) == 0 {
		return nil, fmt.Errorf("noise.Draw: empty shape")
	}
	n, g := req.Sizes[0], len(streams)
	if g == 0 || n%g != 0 {
		return nil, fmt.Errorf("noise.Draw: shape[0] (%d) and stream count (%d): %w", n, g, ErrInvalidBatchSize)
	}
	cells := tensor.CellsSizes(req.Sizes)
	slices := make([]tensor.Tensor, n)
	for i := range slices {
		st := streams[i%g]
		sl, err := newFilled(st.Rand, append([]int{1}, cells...), st.Device, req.Dtype, req.Kind, req.Low, req.High)
		if err != nil {
			return nil, err
		}
		slices[i] = sl
	}
	out, err := tensor.CatRows(slices...)
	if err != nil {
		return nil, err
	}
	return tensor.To(out, req.Device), nil
}

// Rand is a batched [Uniform] draw of the given shape across the given
// streams. See [Draw].
func Rand(sizes []int, streams StreamList, device tensor.Device, dtype reflect.Kind) (tensor.Tensor, error) {
	return Draw(DrawRequest{Sizes: sizes, Device: device, Dtype: dtype, Kind: Uniform}, streams)
}

// Randn is a batched [Normal] draw of the given shape across the given
// streams. See [Draw].
func Randn(sizes []int, streams StreamList, device tensor.Device, dtype reflect.Kind) (tensor.Tensor, error) {
	return Draw(DrawRequest{Sizes: sizes, Device: device, Dtype: dtype, Kind: Normal}, streams)
}

// RandInt is a batched [Integer] draw in [low,high) of the given shape
// across the given streams. See [Draw].
func RandInt(low, high int64, sizes []int, streams StreamList, device tensor.Device, dtype reflect.Kind) (tensor.Tensor, error) {
	return Draw(DrawRequest{Sizes: sizes, Device: device, Dtype: dtype, Kind: Integer, Low: low, High: high}, streams)
}

// newFilled returns a new tensor of the given shape, element type and
// device, filled from the given source with one value per element in
// row-major order. The fill order is part of the reproducibility
// contract: changing it changes output even for identical sources.
func newFilled(r randx.Rand, sizes []int, dev tensor.Device, dtype reflect.Kind, kind Kind, low, high int64) (tensor.Tensor, error) {
	if dtype == reflect.Invalid {
		dtype = reflect.Float32
	}
	tsr, err := tensor.NewOfKind(dtype, sizes...)
	if err != nil {
		return nil, err
	}
	tsr.SetDevice(dev)
	n := tsr.Len()
	switch kind {
	case Uniform:
		for i := 0; i < n; i++ {
			tsr.SetFloat1D(r.Float64(), i)
		}
	case Normal:
		for i := 0; i < n; i++ {
			tsr.SetFloat1D(r.NormFloat64(), i)
		}
	case Integer:
		for i := 0; i < n; i++ {
			tsr.SetFloat1D(float64(low+r.Int63n(high-low)), i)
		}
	default:
		return nil, fmt.Errorf("noise: kind %v: %w", kind, ErrUnsupportedDrawKind)
	}
	return tsr, nil
}
