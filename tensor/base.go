// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
	"unsafe"
)

// Base is the base for all tensor types, providing the shape,
// backing value storage, and device affinity tag.
type Base[T any] struct {
	shape  Shape
	device Device

	// Values is the flat row-major backing storage.
	Values []T

	// Meta holds optional metadata about the tensor.
	Meta map[string]string
}

// Shape returns a pointer to the Shape that fully parametrizes the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// SetShapeSizes sets the dimension sizes, resizing backing storage
// appropriately, retaining all existing data that fits.
func (tsr *Base[T]) SetShapeSizes(sizes ...int) {
	tsr.shape.SetShapeSizes(sizes...)
	tsr.Values = setLength(tsr.Values, tsr.Len())
}

// SetNumRows sets the number of rows (outermost dimension).
func (tsr *Base[T]) SetNumRows(rows int) {
	rows = max(1, rows) // must be > 0
	_, cells := tsr.shape.RowCellSize()
	tsr.shape.Sizes[0] = rows
	tsr.Values = setLength(tsr.Values, rows*cells)
}

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// RowCellSize returns the size of the outermost Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
func (tsr *Base[T]) RowCellSize() (rows, cells int) {
	return tsr.shape.RowCellSize()
}

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Sizeof returns the number of bytes contained in the Values of this tensor.
func (tsr *Base[T]) Sizeof() int64 {
	var v T
	return int64(unsafe.Sizeof(v)) * int64(tsr.Len())
}

// Bytes returns the underlying byte representation of the tensor values.
// This is the actual underlying data, so make a copy if it can be
// unintentionally modified or retained more than for immediate use.
func (tsr *Base[T]) Bytes() []byte {
	if len(tsr.Values) == 0 {
		return nil
	}
	var v T
	return unsafe.Slice((*byte)(unsafe.Pointer(&tsr.Values[0])),
		len(tsr.Values)*int(unsafe.Sizeof(v)))
}

// Device returns the compute device where the tensor values are resident.
func (tsr *Base[T]) Device() Device { return tsr.device.Canon() }

// SetDevice tags the tensor as resident on the given device.
func (tsr *Base[T]) SetDevice(dev Device) { tsr.device = dev.Canon() }

// Value returns the value of given n-dimensional index (matching Shape).
func (tsr *Base[T]) Value(i ...int) T { return tsr.Values[tsr.shape.Offset(i...)] }

// Value1D returns the value of given 1-dimensional index (0-Len()-1).
func (tsr *Base[T]) Value1D(i int) T { return tsr.Values[i] }

// Set sets the value of given n-dimensional index (matching Shape).
func (tsr *Base[T]) Set(val T, i ...int) { tsr.Values[tsr.shape.Offset(i...)] = val }

// Set1D sets the value of given 1-dimensional index (0-Len()-1).
func (tsr *Base[T]) Set1D(val T, i int) { tsr.Values[i] = val }

// setLength sets the length of the given slice, reusing capacity when
// available and preserving existing values that fit.
func setLength[T any](s []T, n int) []T {
	if n <= cap(s) {
		return s[:n]
	}
	ns := make([]T, n)
	copy(ns, s)
	return ns
}
