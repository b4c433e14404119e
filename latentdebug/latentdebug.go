// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latentdebug writes labeled snapshots of sampler latents as
// PNG files, one per batch sample, for inspecting intermediate steps
// of a generation run. Snapshots are gated by label so an instrumented
// pipeline is free when nothing is enabled.
package latentdebug

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/noisefold/core/base/fsx"
	"github.com/noisefold/core/base/iox/imagex"
	"github.com/noisefold/core/tensor"
)

// latentScale is the VAE scaling factor of the latent space;
// latents are divided by it before decoding.
const latentScale = 0.18215

// Decoder decodes a batch of latents into an image tensor with values
// in -1..1, as a VAE decoder does.
type Decoder interface {
	Decode(latents tensor.Tensor) (tensor.Tensor, error)
}

// Debugger decodes latents at chosen pipeline stages and writes them
// as per-sample PNG files named debug-<label>-<sample>-<step>.png.
type Debugger struct {
	// Decoder turns latents into image tensors.
	Decoder Decoder

	// OutputPath is the directory snapshots are written into.
	OutputPath string

	// Enabled gates snapshots by label; disabled labels are a no-op.
	Enabled map[string]bool
}

// New returns a new [Debugger] using the given decoder, writing into
// the given directory ([fsx.DebugPath] if empty), with the given
// labels enabled.
func New(dec Decoder, outputPath string, labels ...string) *Debugger {
	if outputPath == "" {
		outputPath = fsx.DebugPath()
	}
	db := &Debugger{Decoder: dec, OutputPath: outputPath, Enabled: make(map[string]bool)}
	for _, l := range labels {
		db.Enabled[l] = true
	}
	return db
}

// Log decodes the given latents and writes one PNG per batch sample,
// if the label is enabled. The step number distinguishes successive
// snapshots of the same label.
func (db *Debugger) Log(label string, step int, latents tensor.Tensor) error {
	if !db.Enabled[label] {
		return nil
	}
	scaled := latents.Clone()
	for i := 0; i < scaled.Len(); i++ {
		scaled.SetFloat1D(scaled.Float1D(i)/latentScale, i)
	}
	img, err := db.Decoder.Decode(scaled)
	if err != nil {
		return fmt.Errorf("latentdebug: decode %s-%d: %w", label, step, err)
	}
	// decoder output is -1..1; map to 0..1 and bring to host
	img = imagex.Levels(tensor.To(img, tensor.CPU), -1, 1, 0, 1)
	pngs, err := imagex.ToPNG(img)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(db.OutputPath, 0o755); err != nil {
		return err
	}
	for j, data := range pngs {
		path := filepath.Join(db.OutputPath, fmt.Sprintf("debug-%s-%d-%d.png", label, j, step))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
