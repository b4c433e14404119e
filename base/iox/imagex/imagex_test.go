// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"testing"

	"github.com/noisefold/core/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage is an 8x8 opaque image with a white 4x4 square centered
// on black.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := color.RGBA{A: 0xff}
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				px.R, px.G, px.B = 0xff, 0xff, 0xff
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

func TestFormats(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)

	f, err = ExtToFormat("jpeg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)

	_, err = ExtToFormat(".xyz")
	assert.Error(t, err)
}

func TestImageRoundTrip(t *testing.T) {
	ts := FromImage(testImage())
	assert.Equal(t, []int{1, 3, 8, 8}, ts.Shape().Sizes)
	assert.Equal(t, 1.0, ts.Float(0, 0, 3, 3))
	assert.Equal(t, 0.0, ts.Float(0, 0, 0, 0))

	imgs, err := ToImages(ts)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	r, _, _, a := imgs[0].At(3, 3).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestPNGRoundTrip(t *testing.T) {
	ts := FromImage(testImage())
	pngs, err := ToPNG(ts)
	require.NoError(t, err)
	require.Len(t, pngs, 1)

	back, err := FromPNG(pngs[0])
	require.NoError(t, err)
	assert.Equal(t, ts.Values, back.Values)
}

func TestNormalize(t *testing.T) {
	ts := FromImage(testImage()) // 3 channels

	one, err := Normalize(ts, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, one.DimSize(1))

	four, err := Normalize(ts, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, four.DimSize(1))
	assert.Equal(t, 0.0, four.Float(0, 3, 3, 3)) // filled alpha is zero

	three, err := Normalize(one, 3)
	require.NoError(t, err)
	assert.Equal(t, three.Float(0, 0, 3, 3), three.Float(0, 2, 3, 3))

	_, err = Normalize(ts, 2)
	assert.Error(t, err)
}

func TestLevelsInvert(t *testing.T) {
	ts := tensor.NewFloat32(1, 1, 1, 3)
	ts.Values = []float32{0.25, 0.5, 0.75}

	out := Levels(ts, 0.25, 0.75, 0, 1)
	assert.InDelta(t, 0, out.Float1D(0), 1.0e-6)
	assert.InDelta(t, 0.5, out.Float1D(1), 1.0e-6)
	assert.InDelta(t, 1, out.Float1D(2), 1.0e-6)

	// out-of-range values clamp
	clamped := Levels(ts, 0.5, 0.75, 0, 1)
	assert.Equal(t, 0.0, clamped.Float1D(0))

	inv := Invert(ts)
	assert.InDelta(t, 0.75, inv.Float1D(0), 1.0e-6)
}

func TestChannelMap(t *testing.T) {
	ts := FromImage(testImage())

	out, err := ChannelMap(ts, []int{2, 1, 0, ChOne})
	require.NoError(t, err)
	assert.Equal(t, 4, out.DimSize(1))
	assert.Equal(t, 1.0, out.Float(0, 3, 0, 0))

	out, err = ChannelMap(ts, []int{0, ChDrop, ChZero})
	require.NoError(t, err)
	assert.Equal(t, 2, out.DimSize(1))
	assert.Equal(t, 0.0, out.Float(0, 1, 3, 3))
}

func TestCrop(t *testing.T) {
	ts := FromImage(testImage())
	out, err := Crop(ts, 2, 2, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 4}, out.Shape().Sizes)
	assert.Equal(t, 1.0, out.Float(0, 0, 0, 0)) // white square now at origin
}

func TestRescale(t *testing.T) {
	ts := FromImage(testImage()) // 8x8

	out, err := Rescale(ts, 4, 16, Strict)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 16}, out.Shape().Sizes)

	// cover scales by the larger ratio: 4x4 centered, zero-padded wide
	out, err = Rescale(ts, 4, 16, Cover)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 16}, out.Shape().Sizes)
	assert.Equal(t, 0.0, out.Float(0, 0, 1, 0))

	// contain scales by the smaller ratio: 16x16 center-cropped to 4x16
	out, err = Rescale(ts, 4, 16, Contain)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 16}, out.Shape().Sizes)
	assert.Greater(t, out.Float(0, 0, 1, 8), 0.9)
}

func TestGaussianBlur(t *testing.T) {
	ts := FromImage(testImage())
	out, err := GaussianBlur(ts, 1)
	require.NoError(t, err)
	assert.Equal(t, ts.Shape().Sizes, out.Shape().Sizes)

	// the hard edge is smoothed: boundary pixels are now in between
	v := out.Float(0, 0, 2, 1)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestDirectionalBlur(t *testing.T) {
	ts := FromImage(testImage())
	out, err := DirectionalBlur(ts, 1, Down, 4)
	require.NoError(t, err)

	// down only ever darkens
	for i := 0; i < out.Len(); i++ {
		assert.LessOrEqual(t, out.Float1D(i), ts.Float1D(i)+1.0e-6)
	}
}

func TestEdgeDetect(t *testing.T) {
	ts := FromImage(testImage())
	out, err := EdgeDetect(ts, 0.1, 0.4)
	require.NoError(t, err)
	assert.Equal(t, 1, out.DimSize(1))

	// strong response at the square boundary, none in flat regions
	assert.Greater(t, out.Float(0, 0, 2, 2), 0.5)
	assert.Equal(t, 0.0, out.Float(0, 0, 0, 0))
}
