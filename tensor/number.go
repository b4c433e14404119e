// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"

	"github.com/noisefold/core/base/num"
	"gonum.org/v1/gonum/mat"
)

// Number is a tensor of numerical values.
type Number[T num.Number] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// Byte is an alias for Number[byte].
type Byte = Number[byte]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewInt returns a new [Int] tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewInt32 returns a new [Int32] tensor
// with the given sizes per dimension (shape).
func NewInt32(sizes ...int) *Int32 {
	return NewNumber[int32](sizes...)
}

// NewByte returns a new [Byte] tensor
// with the given sizes per dimension (shape).
func NewByte(sizes ...int) *Byte {
	return NewNumber[uint8](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T num.Number](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewNumberShape returns a new n-dimensional tensor of numerical values
// using given shape.
func NewNumberShape[T num.Number](shape *Shape) *Number[T] {
	tsr := &Number[T]{}
	tsr.shape.CopyFrom(shape)
	tsr.Values = make([]T, tsr.Len())
	return tsr
}

// String satisfies the fmt.Stringer interface.
func (tsr *Number[T]) String() string { return sprint(tsr, 100) }

// Float returns the value of given n-dimensional index (matching Shape) as a float64.
func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Values[tsr.shape.Offset(i...)])
}

// SetFloat sets the value of given n-dimensional index (matching Shape) as a float64.
func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.shape.Offset(i...)] = T(val)
}

// Float1D returns the value of given 1-dimensional index (0-Len()-1) as a float64.
func (tsr *Number[T]) Float1D(i int) float64 { return float64(tsr.Values[i]) }

// SetFloat1D sets the value of given 1-dimensional index (0-Len()-1) as a float64.
func (tsr *Number[T]) SetFloat1D(val float64, i int) { tsr.Values[i] = T(val) }

// FloatRowCell returns the value at given row and cell, where row is the
// outermost dimension, and cell is a 1D index into remaining inner dimensions.
func (tsr *Number[T]) FloatRowCell(row, cell int) float64 {
	_, cells := tsr.shape.RowCellSize()
	return float64(tsr.Values[row*cells+cell])
}

// SetFloatRowCell sets the value at given row and cell, where row is the
// outermost dimension, and cell is a 1D index into remaining inner dimensions.
func (tsr *Number[T]) SetFloatRowCell(val float64, row, cell int) {
	_, cells := tsr.shape.RowCellSize()
	tsr.Values[row*cells+cell] = T(val)
}

// Clone returns a copy of this tensor with its own copy of the
// underlying values, on the same device.
func (tsr *Number[T]) Clone() Tensor {
	c := NewNumberShape[T](&tsr.shape)
	copy(c.Values, tsr.Values)
	c.device = tsr.device
	c.Meta = tsr.Meta
	return c
}

// Dims returns the 2-d row x cell dimensions of the tensor,
// satisfying the gonum [mat.Matrix] interface.
func (tsr *Number[T]) Dims() (r, c int) { return tsr.shape.RowCellSize() }

// At returns the value at given row x cell index,
// satisfying the gonum [mat.Matrix] interface.
func (tsr *Number[T]) At(i, j int) float64 { return tsr.FloatRowCell(i, j) }

// T returns the transpose of the 2-d view of the tensor,
// satisfying the gonum [mat.Matrix] interface.
func (tsr *Number[T]) T() mat.Matrix { return mat.Transpose{Matrix: tsr} }

// sprint prints the data type, shape and up to maxLen values of the tensor.
func sprint(tsr Tensor, maxLen int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %s", tsr.DataType(), tsr.Shape().String())
	n := min(tsr.Len(), maxLen)
	_, cells := tsr.RowCellSize()
	for i := 0; i < n; i++ {
		if cells > 0 && i%cells == 0 {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%g", tsr.Float1D(i))
	}
	if tsr.Len() > maxLen {
		b.WriteString(" ...")
	}
	b.WriteString("\n")
	return b.String()
}
