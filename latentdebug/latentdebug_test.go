// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latentdebug

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/noisefold/core/base/iox/imagex"
	"github.com/noisefold/core/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder records the latents it saw and returns a fixed-size
// image batch with all values at the given level (-1..1 range).
type fakeDecoder struct {
	got   tensor.Tensor
	level float64
}

func (d *fakeDecoder) Decode(latents tensor.Tensor) (tensor.Tensor, error) {
	d.got = latents
	b := latents.DimSize(0)
	return tensor.NewFloat64Full(d.level, b, 3, 4, 4), nil
}

func TestLogWritesPerSample(t *testing.T) {
	dir := t.TempDir()
	dec := &fakeDecoder{level: 1}
	db := New(dec, dir, "latents")

	lat := tensor.NewFloat64Full(0.18215, 2, 4, 2, 2)
	require.NoError(t, db.Log("latents", 7, lat))

	// latents are rescaled before decoding
	assert.InDelta(t, 1, dec.got.Float1D(0), 1e-6)

	for j := 0; j < 2; j++ {
		path := filepath.Join(dir, fmt.Sprintf("debug-latents-%d-7.png", j))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		img, err := imagex.FromPNG(data)
		require.NoError(t, err)
		// decoder output 1 maps to white
		assert.InDelta(t, 1, img.Float(0, 0, 0, 0), 0.01)
	}
}

func TestLogDisabledLabel(t *testing.T) {
	dir := t.TempDir()
	dec := &fakeDecoder{level: 0}
	db := New(dec, dir, "latents")

	lat := tensor.NewFloat64Full(0, 1, 4, 2, 2)
	require.NoError(t, db.Log("other", 0, lat))
	assert.Nil(t, dec.got)

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, ents)
}

func TestNewDefaultPath(t *testing.T) {
	t.Setenv("NOISEFOLD_DEBUG_PATH", filepath.Join(t.TempDir(), "dbg"))
	db := New(&fakeDecoder{}, "")
	assert.NotEmpty(t, db.OutputPath)
}
