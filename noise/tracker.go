// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime"

	"github.com/noisefold/core/base/logx"
	"github.com/noisefold/core/tensor"
)

// Tracker is a strictly diagnostic [Engine] wrapper that flags draws
// bypassing explicit seeding. Each of the six draw operations, when
// called without an explicit stream, logs a single warning the first
// time a given call site (file:line:function) is seen, then forwards
// to the wrapped engine unchanged either way: installing a tracker
// never alters any generated sample, and a tracker never fails a draw.
type Tracker struct {
	// Eng is the wrapped engine; every call forwards to it.
	Eng Engine

	// Logger receives the one-time warnings.
	Logger *slog.Logger

	// Warned is the set of call-site keys already warned about.
	// It grows monotonically for the life of the tracker; if the host
	// draws from multiple goroutines it needs external synchronization,
	// which affects only warning quality, never draw output.
	Warned map[string]bool
}

// NewTracker returns a new [Tracker] over the given engine ([Default]
// if nil), warning through the given logger (the module's "noise"
// logger if nil). Each tracker owns its seen-set, so independent
// trackers warn independently.
func NewTracker(eng Engine, logger *slog.Logger) *Tracker {
	if eng == nil {
		eng = Default
	}
	if logger == nil {
		logger = logx.Logger("noise")
	}
	return &Tracker{Eng: eng, Logger: logger, Warned: make(map[string]bool)}
}

// InstallTracker wraps the process-wide [Default] engine with a
// [Tracker]. Installing twice has no further effect.
func InstallTracker() {
	if _, ok := Default.(*Tracker); ok {
		return
	}
	Default = NewTracker(Default, nil)
}

// warn logs a one-time warning keyed by the call site two frames up:
// the immediate caller of the tracker method.
func (tr *Tracker) warn() {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return
	}
	fn := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	key := fmt.Sprintf("%s:%d:%s", file, line, fn)
	if tr.Warned[key] {
		return
	}
	tr.Warned[key] = true
	tr.Logger.Warn("non-deterministic rand called", "at", key)
}

// Rand draws a [Uniform] tensor of the given shape.
func (tr *Tracker) Rand(sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	if len(stream) == 0 || stream[0] == nil {
		tr.warn()
	}
	return tr.Eng.Rand(sizes, device, dtype, stream...)
}

// RandLike draws a [Uniform] tensor mirroring the input's shape.
func (tr *Tracker) RandLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	if len(stream) == 0 || stream[0] == nil {
		tr.warn()
	}
	return tr.Eng.RandLike(input, device, dtype, stream...)
}

// Randn draws a [Normal] tensor of the given shape.
func (tr *Tracker) Randn(sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	if len(stream) == 0 || stream[0] == nil {
		tr.warn()
	}
	return tr.Eng.Randn(sizes, device, dtype, stream...)
}

// RandnLike draws a [Normal] tensor mirroring the input's shape.
func (tr *Tracker) RandnLike(input tensor.Tensor, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	if len(stream) == 0 || stream[0] == nil {
		tr.warn()
	}
	return tr.Eng.RandnLike(input, device, dtype, stream...)
}

// RandInt draws an [Integer] tensor in [low,high) of the given shape.
func (tr *Tracker) RandInt(low, high int64, sizes []int, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	if len(stream) == 0 || stream[0] == nil {
		tr.warn()
	}
	return tr.Eng.RandInt(low, high, sizes, device, dtype, stream...)
}

// RandIntLike draws an [Integer] tensor in [low,high) mirroring the
// input's shape.
func (tr *Tracker) RandIntLike(input tensor.Tensor, low, high int64, device tensor.Device, dtype reflect.Kind, stream ...*Stream) (tensor.Tensor, error) {
	if len(stream) == 0 || stream[0] == nil {
		tr.warn()
	}
	return tr.Eng.RandIntLike(input, low, high, device, dtype, stream...)
}
