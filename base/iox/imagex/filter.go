// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/noisefold/core/tensor"
)

// Direction selects whether an iterated filter folds toward lighter
// or darker values.
type Direction int32

const (
	// Up keeps the maximum of filtered and original values.
	Up Direction = iota

	// Down keeps the minimum of filtered and original values.
	Down
)

// GaussianBlur blurs every sample of an image tensor with the given
// standard deviation, expressed in pixels.
func GaussianBlur(t tensor.Tensor, sigma float64) (tensor.Tensor, error) {
	// bild takes the kernel radius; cover +-3 sigma as usual
	return applyImage(t, func(img image.Image) image.Image {
		return blur.Gaussian(img, sigma*3)
	})
}

// DirectionalBlur repeatedly applies a small Gaussian blur, after each
// pass keeping the min (Down) or max (Up) of the blurred values and
// the original, so the blur only ever darkens or lightens. The sigma
// of each pass is scaled down so that repeat passes together
// approximate one blur of the given sigma.
func DirectionalBlur(t tensor.Tensor, sigma float64, dir Direction, repeat int) (tensor.Tensor, error) {
	orig, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	sigma /= math.Sqrt(float64(repeat))
	cur := orig
	for r := 0; r < repeat; r++ {
		cur, err = GaussianBlur(cur, sigma)
		if err != nil {
			return nil, err
		}
		for i := 0; i < cur.Len(); i++ {
			ov := orig.Float1D(i)
			bv := cur.Float1D(i)
			if (dir == Down && ov < bv) || (dir == Up && ov > bv) {
				cur.SetFloat1D(ov, i)
			}
		}
	}
	return cur, nil
}

// EdgeDetect returns a single-channel edge map of every sample, from
// the Sobel gradient magnitude: values below low are suppressed to 0,
// values at or above high saturate to 1, and values between scale
// linearly. low and high are in 0..1.
func EdgeDetect(t tensor.Tensor, low, high float64) (tensor.Tensor, error) {
	edges, err := applyImage(t, func(img image.Image) image.Image {
		return effect.Sobel(effect.Grayscale(img))
	})
	if err != nil {
		return nil, err
	}
	mag, err := Normalize(edges, 1)
	if err != nil {
		return nil, err
	}
	return Levels(mag, low, high, 0, 1), nil
}

// applyImage runs the given image filter over every sample of an
// image tensor, returning a tensor batch with the input's channel
// count. Values round-trip through 8-bit images, so filters quantize
// to 1/255 steps.
func applyImage(t tensor.Tensor, f func(img image.Image) image.Image) (tensor.Tensor, error) {
	t, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	c := t.DimSize(1)
	imgs, err := ToImages(t)
	if err != nil {
		return nil, err
	}
	outs := make([]tensor.Tensor, len(imgs))
	for i, img := range imgs {
		ft := tensor.Tensor(FromImage(f(img)))
		switch {
		case ft.DimSize(1) == c:
		case c == 1:
			ft = selectChannels(ft, []int{0})
		case c == 3:
			ft = selectChannels(ft, []int{0, 1, 2})
		case c == 4:
			// filtered image came back opaque: keep it opaque
			alpha := tensor.NewFloat32(1, 1, ft.DimSize(2), ft.DimSize(3))
			for j := range alpha.Values {
				alpha.Values[j] = 1
			}
			ft, err = catChannels(selectChannels(ft, []int{0, 1, 2}), alpha)
			if err != nil {
				return nil, err
			}
		}
		outs[i] = ft
	}
	out, err := tensor.CatRows(outs...)
	if err != nil {
		return nil, err
	}
	out.SetDevice(t.Device())
	return out, nil
}
