// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "github.com/noisefold/core/base/num"

// NewFloat64FromValues returns a new 1-dimensional [Float64] tensor
// initialized directly from the given slice values, which are not copied.
// The resulting tensor thus "wraps" the given values.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// NewFloat32FromValues returns a new 1-dimensional [Float32] tensor
// initialized directly from the given slice values, which are not copied.
// The resulting tensor thus "wraps" the given values.
func NewFloat32FromValues(vals ...float32) *Float32 {
	return NewNumberFromValues(vals...)
}

// NewIntFromValues returns a new 1-dimensional [Int] tensor
// initialized directly from the given slice values, which are not copied.
// The resulting tensor thus "wraps" the given values.
func NewIntFromValues(vals ...int) *Int {
	return NewNumberFromValues(vals...)
}

// NewNumberFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	n := len(vals)
	tsr := &Number[T]{}
	tsr.Values = vals
	tsr.shape.SetShapeSizes(n)
	return tsr
}

// NewFloat64Full returns a new [Float64] tensor of given shape,
// with all values set to the given value.
func NewFloat64Full(val float64, sizes ...int) *Float64 {
	tsr := NewFloat64(sizes...)
	for i := range tsr.Values {
		tsr.Values[i] = val
	}
	return tsr
}

// NewFloat64Ones returns a new [Float64] tensor of given shape,
// with all values set to 1.
func NewFloat64Ones(sizes ...int) *Float64 {
	return NewFloat64Full(1, sizes...)
}
