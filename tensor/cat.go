// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// CatRows concatenates the given tensors along the outermost (row, batch)
// dimension, in argument order, returning a new tensor on the first
// tensor's device. All tensors must have the same data type and the same
// cell (non-row) sizes.
func CatRows(tsrs ...Tensor) (Tensor, error) {
	if len(tsrs) == 0 {
		return nil, fmt.Errorf("tensor.CatRows: no tensors given")
	}
	ft := tsrs[0]
	cells := CellsSizes(ft.Shape().Sizes)
	rows := 0
	for _, t := range tsrs {
		if t.DataType() != ft.DataType() {
			return nil, fmt.Errorf("tensor.CatRows: data type %v does not match %v", t.DataType(), ft.DataType())
		}
		if !slices.Equal(CellsSizes(t.Shape().Sizes), cells) {
			return nil, fmt.Errorf("tensor.CatRows: cell sizes %v do not match %v", t.Shape().Sizes[1:], cells)
		}
		rows += t.DimSize(0)
	}
	out, err := NewOfKind(ft.DataType(), append([]int{rows}, cells...)...)
	if err != nil {
		return nil, err
	}
	out.SetDevice(ft.Device())
	row := 0
	for _, t := range tsrs {
		tr, tc := t.RowCellSize()
		for r := 0; r < tr; r++ {
			for c := 0; c < tc; c++ {
				out.SetFloatRowCell(t.FloatRowCell(r, c), row, c)
			}
			row++
		}
	}
	return out, nil
}
