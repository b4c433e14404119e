// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/noisefold/core/tensor"
)

// Fit controls how [Rescale] maps the source aspect ratio onto the
// target size.
type Fit int32

const (
	// Strict resizes to exactly the target size, distorting the
	// aspect ratio if needed.
	Strict Fit = iota

	// Cover preserves the aspect ratio by the larger of the two
	// scale-down factors, so the result fits inside the target size
	// and the remainder is zero-padded, centered.
	Cover

	// Contain preserves the aspect ratio by the smaller of the two
	// scale-down factors, so the result covers the target size and
	// the overflow is center-cropped.
	Contain
)

// Rescale resizes every sample of an image tensor to height x width
// with Lanczos resampling, applying the given fit, then center-crops
// any overflow and zero-pads any remainder.
func Rescale(t tensor.Tensor, height, width int, fit Fit) (tensor.Tensor, error) {
	t, err := EnsureBatch(t)
	if err != nil {
		return nil, err
	}
	origH, origW := t.DimSize(2), t.DimSize(3)
	scaleH := float64(origH) / float64(height)
	scaleW := float64(origW) / float64(width)
	switch fit {
	case Cover:
		scaleH = math.Max(scaleH, scaleW)
		scaleW = scaleH
	case Contain:
		scaleH = math.Min(scaleH, scaleW)
		scaleW = scaleH
	case Strict:
	default:
		return nil, fmt.Errorf("imagex.Rescale: unknown fit %d", fit)
	}
	resH := int(math.Round(float64(origH) / scaleH))
	resW := int(math.Round(float64(origW) / scaleW))

	resized, err := applyImage(t, func(img image.Image) image.Image {
		return transform.Resize(img, resW, resH, transform.Lanczos)
	})
	if err != nil {
		return nil, err
	}
	if resH == height && resW == width {
		return resized, nil
	}
	return centerFit(resized, height, width)
}

// centerFit crops or zero-pads every sample, centered, to height x width.
func centerFit(t tensor.Tensor, height, width int) (tensor.Tensor, error) {
	n, c := t.DimSize(0), t.DimSize(1)
	resH, resW := t.DimSize(2), t.DimSize(3)
	// positive offsets pad, negative crop
	offH := (height - resH) / 2
	offW := (width - resW) / 2
	out := tensor.NewFloat32(n, c, height, width)
	out.SetDevice(t.Device())
	for i := 0; i < n; i++ {
		for ch := 0; ch < c; ch++ {
			for y := 0; y < height; y++ {
				sy := y - offH
				if sy < 0 || sy >= resH {
					continue
				}
				for x := 0; x < width; x++ {
					sx := x - offW
					if sx < 0 || sx >= resW {
						continue
					}
					out.Set(float32(t.Float(i, ch, sy, sx)), i, ch, y, x)
				}
			}
		}
	}
	return out, nil
}
