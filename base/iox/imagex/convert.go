// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/chewxy/math32"
	"github.com/noisefold/core/tensor"
)

// FromImage converts the given image to a [1, C, H, W] float tensor
// with values in 0..1. C is 4 when the image carries alpha, 3 otherwise.
func FromImage(img image.Image) *tensor.Float32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	channels := 4
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		channels = 3
	}
	t := tensor.NewFloat32(1, channels, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.Set(float32(r)/0xffff, 0, 0, y, x)
			t.Set(float32(g)/0xffff, 0, 1, y, x)
			t.Set(float32(bl)/0xffff, 0, 2, y, x)
			if channels == 4 {
				t.Set(float32(a)/0xffff, 0, 3, y, x)
			}
		}
	}
	return t
}

// ToImages converts a [B, C, H, W] (or [C, H, W], taken as B=1) float
// tensor with values in 0..1 to one NRGBA image per batch sample.
// C of 1 is replicated to gray, 3 gets opaque alpha, 4 maps directly.
func ToImages(t tensor.Tensor) ([]image.Image, error) {
	t, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	n, c, h, w := t.DimSize(0), t.DimSize(1), t.DimSize(2), t.DimSize(3)
	if c != 1 && c != 3 && c != 4 {
		return nil, fmt.Errorf("imagex.ToImages: cannot render %d channels", c)
	}
	imgs := make([]image.Image, n)
	for i := 0; i < n; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px := color.NRGBA{A: 0xff}
				switch c {
				case 1:
					v := toByte(t.Float(i, 0, y, x))
					px.R, px.G, px.B = v, v, v
				case 4:
					px.A = toByte(t.Float(i, 3, y, x))
					fallthrough
				case 3:
					px.R = toByte(t.Float(i, 0, y, x))
					px.G = toByte(t.Float(i, 1, y, x))
					px.B = toByte(t.Float(i, 2, y, x))
				}
				img.SetNRGBA(x, y, px)
			}
		}
		imgs[i] = img
	}
	return imgs, nil
}

// FromPNG decodes the given encoded image bytes (PNG or any other
// supported format) into a [1, C, H, W] float tensor. See [FromImage].
func FromPNG(data []byte) (*tensor.Float32, error) {
	img, _, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// ToPNG encodes a [B, C, H, W] float tensor as one PNG per batch
// sample, preserving alpha when present.
func ToPNG(t tensor.Tensor) ([][]byte, error) {
	imgs, err := ToImages(tensor.To(t, tensor.CPU))
	if err != nil {
		return nil, err
	}
	pngs := make([][]byte, len(imgs))
	for i, img := range imgs {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		pngs[i] = buf.Bytes()
	}
	return pngs, nil
}

// EnsureBatch returns the given tensor with a leading batch dimension:
// a [C, H, W] tensor becomes its [1, C, H, W] view. It is an error for
// the tensor to have other than 3 or 4 dimensions.
func EnsureBatch(t tensor.Tensor) (tensor.Tensor, error) {
	switch t.NumDims() {
	case 4:
		return t, nil
	case 3:
		v := t.Clone()
		sz := t.Shape().Sizes
		v.SetShapeSizes(1, sz[0], sz[1], sz[2])
		return v, nil
	}
	return nil, fmt.Errorf("imagex: image tensor must be [B, C, H, W] or [C, H, W], not %v", t.Shape())
}

// toByte maps a 0..1 value to a rounded byte, clamping out-of-range values.
func toByte(v float64) uint8 {
	return uint8(math32.Round(clamp01(float32(v)) * 255))
}

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}
