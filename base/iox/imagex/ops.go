// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"

	"github.com/noisefold/core/tensor"
)

// Channel map codes: 0..3 select a source channel, [ChZero] and [ChOne]
// fill with constants, [ChDrop] omits the channel from the output.
const (
	ChZero = 4
	ChOne  = 5
	ChDrop = 6
)

// Normalize coerces an image tensor to the given channel count
// (1, 3 or 4): extra channels are dropped, missing color channels
// replicate channel 0, and a missing alpha channel is filled with
// zeros.
func Normalize(t tensor.Tensor, channels int) (tensor.Tensor, error) {
	t, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	c := t.DimSize(1)
	switch channels {
	case 1:
		return selectChannels(t, []int{0}), nil
	case 3:
		if c >= 3 {
			return selectChannels(t, []int{0, 1, 2}), nil
		}
		return selectChannels(t, []int{0, 0, 0}), nil
	case 4:
		if c >= 4 {
			return selectChannels(t, []int{0, 1, 2, 3}), nil
		}
		rgb, err := Normalize(t, 3)
		if err != nil {
			return nil, err
		}
		alpha := tensor.NewFloat32(t.DimSize(0), 1, t.DimSize(2), t.DimSize(3))
		alpha.SetDevice(t.Device())
		return catChannels(rgb, alpha)
	}
	return nil, fmt.Errorf("imagex.Normalize: unknown number of channels %d", channels)
}

// Levels linearly remaps values from the in0..in1 range to the
// out0..out1 range, clamping the result to 0..1.
func Levels(t tensor.Tensor, in0, in1, out0, out1 float64) tensor.Tensor {
	c := (out1 - out0) / (in1 - in0)
	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		v := (out.Float1D(i)-in0)*c + out0
		out.SetFloat1D(float64(clamp01(float32(v))), i)
	}
	return out
}

// Invert returns 1 - value for every element.
func Invert(t tensor.Tensor) tensor.Tensor {
	out := t.Clone()
	for i := 0; i < out.Len(); i++ {
		out.SetFloat1D(1-out.Float1D(i), i)
	}
	return out
}

// ChannelMap builds an output image from the given per-channel source
// codes: 0..3 copy that source channel (out-of-range codes copy
// channel 0), [ChZero] and [ChOne] fill with constants, and [ChDrop]
// omits the channel entirely.
func ChannelMap(t tensor.Tensor, src []int) (tensor.Tensor, error) {
	t, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	c := t.DimSize(1)
	var codes []int
	for _, s := range src {
		if s != ChDrop {
			codes = append(codes, s)
		}
	}
	idx := make([]int, len(codes))
	for i, s := range codes {
		if s < c {
			idx[i] = s
		}
	}
	out := selectChannels(t, idx)
	for i, s := range codes {
		switch s {
		case ChZero:
			fillChannel(out, i, 0)
		case ChOne:
			fillChannel(out, i, 1)
		}
	}
	return out, nil
}

// Crop returns the top/left anchored height x width sub-image of
// every sample.
func Crop(t tensor.Tensor, top, left, height, width int) (tensor.Tensor, error) {
	t, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	n, c := t.DimSize(0), t.DimSize(1)
	out := tensor.NewFloat32(n, c, height, width)
	out.SetDevice(t.Device())
	for i := 0; i < n; i++ {
		for ch := 0; ch < c; ch++ {
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					out.Set(float32(t.Float(i, ch, top+y, left+x)), i, ch, y, x)
				}
			}
		}
	}
	return out, nil
}

// selectChannels returns a new tensor with channel i copied from
// source channel idx[i] of the input.
func selectChannels(t tensor.Tensor, idx []int) tensor.Tensor {
	n, h, w := t.DimSize(0), t.DimSize(2), t.DimSize(3)
	out := tensor.NewFloat32(n, len(idx), h, w)
	out.SetDevice(t.Device())
	for i := 0; i < n; i++ {
		for ci, src := range idx {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					out.Set(float32(t.Float(i, src, y, x)), i, ci, y, x)
				}
			}
		}
	}
	return out
}

// catChannels concatenates image tensors along the channel dimension.
func catChannels(ts ...tensor.Tensor) (tensor.Tensor, error) {
	ft := ts[0]
	n, h, w := ft.DimSize(0), ft.DimSize(2), ft.DimSize(3)
	c := 0
	for _, t := range ts {
		if t.DimSize(0) != n || t.DimSize(2) != h || t.DimSize(3) != w {
			return nil, fmt.Errorf("imagex: channel cat shape %v does not match %v", t.Shape(), ft.Shape())
		}
		c += t.DimSize(1)
	}
	out := tensor.NewFloat32(n, c, h, w)
	out.SetDevice(ft.Device())
	co := 0
	for _, t := range ts {
		for i := 0; i < n; i++ {
			for ch := 0; ch < t.DimSize(1); ch++ {
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						out.Set(float32(t.Float(i, ch, y, x)), i, co+ch, y, x)
					}
				}
			}
		}
		co += t.DimSize(1)
	}
	return out, nil
}

// fillChannel sets every value of the given channel to the given value.
func fillChannel(t tensor.Tensor, ch int, val float64) {
	n, h, w := t.DimSize(0), t.DimSize(2), t.DimSize(3)
	for i := 0; i < n; i++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				t.SetFloat(val, i, ch, y, x)
			}
		}
	}
}
