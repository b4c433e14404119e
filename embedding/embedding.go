// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package embedding defines the text-to-embedding abstraction a
// sampler conditions on: a tokenizer and a pair of encoders (prompt
// and unconditioned) producing [B, S, D] embedding tensors, plus the
// per-sample repetition used to expand embeddings to a batch.
package embedding

import (
	"fmt"

	"github.com/noisefold/core/tensor"
)

// Tokenizer turns a prompt into token ids.
type Tokenizer interface {
	// Tokenize returns the token ids for the given prompt.
	Tokenize(prompt string) ([]int32, error)
}

// Encoder turns a batch of prompts into an embedding tensor of shape
// [B, S, D]: one row per prompt, S tokens of D dimensions each.
type Encoder interface {
	// Encode returns the embedding tensor for the given prompts.
	Encode(prompts []string) (tensor.Tensor, error)
}

// TextEmbedding combines a tokenizer with the prompt and
// unconditioned encoders of a sampler, on one device.
type TextEmbedding struct {
	Tokenizer Tokenizer
	Encoder   Encoder
	Uncond    Encoder
	Device    tensor.Device
}

// NewTextEmbedding returns a new [TextEmbedding] with the given
// tokenizer and encoders on the given device. The unconditioned
// encoder may be nil when the sampler does no guidance.
func NewTextEmbedding(tok Tokenizer, enc, uncond Encoder, device tensor.Device) *TextEmbedding {
	return &TextEmbedding{Tokenizer: tok, Encoder: enc, Uncond: uncond, Device: device.Canon()}
}

// Embeddings returns the conditioned embedding for the given prompts
// and, when uncondPrompts is non-nil, the unconditioned embedding for
// those. Prompts and uncondPrompts are expected to match in length.
func (te *TextEmbedding) Embeddings(prompts, uncondPrompts []string) (cond, uncond tensor.Tensor, err error) {
	cond, err = te.Encoder.Encode(prompts)
	if err != nil {
		return nil, nil, err
	}
	cond = tensor.To(cond, te.Device)
	if uncondPrompts == nil {
		return cond, nil, nil
	}
	enc := te.Uncond
	if enc == nil {
		enc = te.Encoder
	}
	uncond, err = enc.Encode(uncondPrompts)
	if err != nil {
		return nil, nil, err
	}
	return cond, tensor.To(uncond, te.Device), nil
}

// Repeat expands a [B, S, D] embedding to [B*count, S, D], with the
// count copies of each sample laid out contiguously, so sample b of
// the input occupies rows b*count..b*count+count-1 of the output.
func Repeat(emb tensor.Tensor, count int) (tensor.Tensor, error) {
	if emb.NumDims() != 3 {
		return nil, fmt.Errorf("embedding.Repeat: embedding must be [B, S, D], not %v", emb.Shape())
	}
	bs, cells := emb.RowCellSize()
	sz := emb.Shape().Sizes
	out, err := tensor.NewOfKind(emb.DataType(), bs*count, sz[1], sz[2])
	if err != nil {
		return nil, err
	}
	out.SetDevice(emb.Device())
	for b := 0; b < bs; b++ {
		for k := 0; k < count; k++ {
			for c := 0; c < cells; c++ {
				out.SetFloatRowCell(emb.FloatRowCell(b, c), b*count+k, c)
			}
		}
	}
	return out, nil
}
