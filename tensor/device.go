// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Device identifies the compute device where tensor values are resident.
// All math in this package runs on the host; the device is an affinity
// tag that callers use to track where buffers live and when a transfer
// point is crossed. The zero value reads as [CPU].
type Device struct {
	// device kind, e.g., "cpu", "cuda", "mps".
	Kind string

	// index among devices of the same kind.
	Index int
}

// CPU is the default host device.
var CPU = Device{Kind: "cpu"}

// IsNil returns true for the unset zero value, which is treated
// as [CPU] everywhere a device is read.
func (d Device) IsNil() bool { return d.Kind == "" }

// Canon returns the device with the zero value replaced by [CPU],
// for comparisons.
func (d Device) Canon() Device {
	if d.IsNil() {
		return CPU
	}
	return d
}

// String satisfies the fmt.Stringer interface.
func (d Device) String() string {
	d = d.Canon()
	if d.Kind == "cpu" {
		return "cpu"
	}
	return fmt.Sprintf("%s:%d", d.Kind, d.Index)
}

// To returns the given tensor on the given device: the tensor itself
// when already resident there (a no-op), otherwise a clone tagged with
// the new device.
func To(tsr Tensor, dev Device) Tensor {
	if tsr.Device() == dev.Canon() {
		return tsr
	}
	c := tsr.Clone()
	c.SetDevice(dev)
	return c
}
