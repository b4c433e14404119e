// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"reflect"
	"testing"

	"github.com/noisefold/core/base/randx"
	"github.com/noisefold/core/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideRandnLikeBatched(t *testing.T) {
	input := tensor.NewFloat32(6, 2)
	ov := NewOverride(NewEngine(randx.NewSysRand(99)), NewStreams(tensor.CPU, 1, 2, 3))

	out, err := ov.RandnLike(input, tensor.Device{}, reflect.Invalid)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2}, out.Shape().Sizes)
	assert.Equal(t, reflect.Float32, out.DataType())
	assert.Equal(t, tensor.CPU, out.Device())

	// identical to the batched draw with equally seeded streams
	want, err := Randn([]int{6, 2}, NewStreams(tensor.CPU, 1, 2, 3), tensor.CPU, reflect.Float32)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), out.Bytes())
}

func TestOverrideRandnLikeFallback(t *testing.T) {
	input := tensor.NewFloat32(5, 2) // 5 is not a multiple of 3
	sl := NewStreams(tensor.CPU, 1, 2, 3)
	ov := NewOverride(NewEngine(randx.NewSysRand(99)), sl)

	out, err := ov.RandnLike(input, tensor.Device{}, reflect.Invalid)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, out.Shape().Sizes)

	// the fallback engine produced the values
	want, err := NewEngine(randx.NewSysRand(99)).RandnLike(input, tensor.Device{}, reflect.Invalid)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), out.Bytes())

	// and no stream was consumed: the streams still produce the
	// same values as freshly seeded ones
	after, err := Randn([]int{3, 2}, sl, tensor.CPU, reflect.Float64)
	require.NoError(t, err)
	fresh, err := Randn([]int{3, 2}, NewStreams(tensor.CPU, 1, 2, 3), tensor.CPU, reflect.Float64)
	require.NoError(t, err)
	assert.Equal(t, fresh.Bytes(), after.Bytes())
}

func TestOverrideRandIntLike(t *testing.T) {
	// integer draws are keyed by stream index: one row per stream,
	// even when the input batch is twice the stream count
	input := tensor.NewInt32(6, 4)
	ov := NewOverride(NewEngine(nil), NewStreams(tensor.CPU, 1, 2, 3))

	out, err := ov.RandIntLike(input, 0, 10, tensor.Device{}, reflect.Invalid)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, out.Shape().Sizes)
	assert.Equal(t, reflect.Int32, out.DataType())
	for _, v := range tensor.AsFloat64Slice(out) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 10.0)
	}

	// stream order, one slice each
	r := randx.NewSysRand(1)
	assert.Equal(t, float64(r.Int63n(10)), out.FloatRowCell(0, 0))

	// incompatible batch falls back to the engine, keeping batch size
	odd := tensor.NewInt32(5, 4)
	fout, err := ov.RandIntLike(odd, 0, 10, tensor.Device{}, reflect.Invalid)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4}, fout.Shape().Sizes)
}

func TestOverridePassThrough(t *testing.T) {
	// operations without an override delegate to the wrapped engine
	ov := NewOverride(NewEngine(randx.NewSysRand(7)), NewStreams(tensor.CPU, 1))
	out, err := ov.Rand([]int{2, 2}, tensor.CPU, reflect.Float64)
	require.NoError(t, err)

	want, err := NewEngine(randx.NewSysRand(7)).Rand([]int{2, 2}, tensor.CPU, reflect.Float64)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), out.Bytes())
}

func TestEngineExplicitStream(t *testing.T) {
	eng := NewEngine(randx.NewSysRand(99))
	st := NewStream(5, tensor.CPU)
	out, err := eng.Randn([]int{2, 2}, tensor.CPU, reflect.Float64, st)
	require.NoError(t, err)

	r := randx.NewSysRand(5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, r.NormFloat64(), out.Float1D(i))
	}
}
