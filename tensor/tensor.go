// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides a minimal row-major n-dimensional numeric
// tensor, with the leading dimension holding the samples of a batch.
// It is the data type that batched noise generation produces and that
// the image and embedding utilities operate on.
package tensor

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// Tensor is the interface for n-dimensional tensors of numeric values.
// Per C / Go / Python conventions, indexes are row-major, ordered from
// outer to inner left-to-right. It is implemented by the generic
// [Number] type specialized by concrete types: float64, float32, int,
// int32, byte. The 2-d row x cell view of any tensor satisfies
// [mat.Matrix] so results plug directly into gonum routines.
type Tensor interface {
	fmt.Stringer
	mat.Matrix

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// SetShapeSizes sets the dimension sizes of the tensor, resizing
	// backing storage appropriately, retaining all existing data that fits.
	SetShapeSizes(sizes ...int)

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// RowCellSize returns the size of the outermost Row shape dimension,
	// and the size of all the remaining inner dimensions (the "cell" size).
	RowCellSize() (rows, cells int)

	// DataType returns the type of the data elements in the tensor.
	DataType() reflect.Kind

	// Sizeof returns the number of bytes contained in the Values of this tensor.
	Sizeof() int64

	// Bytes returns the underlying byte representation of the tensor values.
	// This is the actual underlying data, so make a copy if it can be
	// unintentionally modified or retained more than for immediate use.
	Bytes() []byte

	// Device returns the compute device where the tensor values are
	// resident. The zero value reads as [CPU].
	Device() Device

	// SetDevice tags the tensor as resident on the given device.
	SetDevice(dev Device)

	// Float returns the value of given n-dimensional index (matching Shape) as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index (matching Shape) as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional index (0-Len()-1) as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index (0-Len()-1) as a float64.
	SetFloat1D(val float64, i int)

	// FloatRowCell returns the value at given row and cell, where row is the
	// outermost dimension, and cell is a 1D index into remaining inner dimensions.
	FloatRowCell(row, cell int) float64

	// SetFloatRowCell sets the value at given row and cell, where row is the
	// outermost dimension, and cell is a 1D index into remaining inner dimensions.
	SetFloatRowCell(val float64, row, cell int)

	// Clone returns a copy of this tensor with its own copy of the
	// underlying values, on the same device.
	Clone() Tensor
}

// NewOfKind returns a new tensor of the given reflect.Kind element type,
// with the given sizes per dimension (shape). Supported kinds are
// Float64, Float32, Int, Int32 and Uint8; anything else is an error.
func NewOfKind(kind reflect.Kind, sizes ...int) (Tensor, error) {
	switch kind {
	case reflect.Float64:
		return NewFloat64(sizes...), nil
	case reflect.Float32:
		return NewFloat32(sizes...), nil
	case reflect.Int:
		return NewInt(sizes...), nil
	case reflect.Int32:
		return NewInt32(sizes...), nil
	case reflect.Uint8:
		return NewByte(sizes...), nil
	}
	return nil, fmt.Errorf("tensor.NewOfKind: data type %v not supported", kind)
}

// AsFloat64Slice returns all values of the given tensor as a flat
// []float64 slice, in row-major order.
func AsFloat64Slice(tsr Tensor) []float64 {
	vals := make([]float64, tsr.Len())
	for i := range vals {
		vals[i] = tsr.Float1D(i)
	}
	return vals
}
