// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
	"strings"
)

// Shape manages a tensor's shape information, including sizes per
// dimension and row-major strides computed from them. Per C / Go / Python
// conventions, indexes are ordered from outer to inner left-to-right,
// so the inner-most dimension is right-most.
type Shape struct {
	// size per dimension.
	Sizes []int

	// offsets for each dimension, always row-major.
	Strides []int
}

// NewShape returns a new shape with given sizes.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShapeSizes(sizes...)
	return sh
}

// SetShapeSizes sets the shape sizes from list of ints,
// updating strides accordingly.
func (sh *Shape) SetShapeSizes(sizes ...int) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sizes...)
}

// CopyFrom copies the shape parameters from another Shape.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
}

// Len returns the total number of elements implied by the shape
// (product of all dimension sizes).
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int { return sh.Sizes[i] }

// RowCellSize returns the size of the outermost Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
// Rows of a batch tensor are its samples.
func (sh *Shape) RowCellSize() (rows, cells int) {
	if len(sh.Sizes) == 0 {
		return 0, 0
	}
	rows = sh.Sizes[0]
	if rows > 0 {
		cells = sh.Len() / rows
	}
	return
}

// Offset returns the 1-d flat offset for the given n-dimensional index.
func (sh *Shape) Offset(index ...int) int {
	off := 0
	for i, v := range index {
		off += v * sh.Strides[i]
	}
	return off
}

// IsEqual returns true if this shape has the same sizes as the other.
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	str := make([]string, len(sh.Sizes))
	for i, v := range sh.Sizes {
		str[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(str, ", ") + "]"
}

// RowMajorStrides returns strides for given sizes, in row-major ordering.
func RowMajorStrides(sizes ...int) []int {
	if len(sizes) == 0 {
		return nil
	}
	strides := make([]int, len(sizes))
	rem := 1
	for i := len(sizes) - 1; i >= 0; i-- {
		strides[i] = rem
		rem *= sizes[i]
	}
	return strides
}

// CellsSizes returns the sizes of the non-row (cell) dimensions
// of the given shape sizes, i.e., all but the first.
func CellsSizes(sizes []int) []int {
	return slices.Clone(sizes[1:])
}
