// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestShape(t *testing.T) {
	sh := NewShape(2, 3, 4)
	assert.Equal(t, 24, sh.Len())
	assert.Equal(t, 3, sh.NumDims())
	assert.Equal(t, []int{12, 4, 1}, sh.Strides)
	assert.Equal(t, 12+2*4+3, sh.Offset(1, 2, 3))

	rows, cells := sh.RowCellSize()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 12, cells)

	assert.Equal(t, "[2, 3, 4]", sh.String())
	assert.True(t, sh.IsEqual(NewShape(2, 3, 4)))
	assert.False(t, sh.IsEqual(NewShape(2, 3)))
}

func TestNumber(t *testing.T) {
	tsr := NewFloat32(2, 3)
	assert.Equal(t, 6, tsr.Len())
	assert.Equal(t, reflect.Float32, tsr.DataType())
	assert.Equal(t, int64(24), tsr.Sizeof())
	assert.Len(t, tsr.Bytes(), 24)

	tsr.SetFloat(3.5, 1, 2)
	assert.Equal(t, 3.5, tsr.Float(1, 2))
	assert.Equal(t, 3.5, tsr.Float1D(5))
	assert.Equal(t, 3.5, tsr.FloatRowCell(1, 2))

	tsr.SetFloatRowCell(1.5, 0, 1)
	assert.Equal(t, 1.5, tsr.Float1D(1))

	c := tsr.Clone()
	c.SetFloat1D(0, 5)
	assert.Equal(t, 3.5, tsr.Float1D(5))
	assert.Equal(t, 0.0, c.Float1D(5))
}

func TestCreate(t *testing.T) {
	assert.Equal(t, []float64{5.5, 1.5}, NewFloat64FromValues(5.5, 1.5).Values)
	assert.Equal(t, []int{5, 1}, NewIntFromValues(5, 1).Values)
	assert.Equal(t, []float64{5.5, 5.5, 5.5, 5.5}, NewFloat64Full(5.5, 2, 2).Values)
	assert.Equal(t, []float64{1, 1, 1, 1}, NewFloat64Ones(2, 2).Values)

	tsr, err := NewOfKind(reflect.Int32, 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, reflect.Int32, tsr.DataType())

	_, err = NewOfKind(reflect.String, 3)
	assert.Error(t, err)
}

func TestDevice(t *testing.T) {
	tsr := NewFloat64(2, 2)
	assert.Equal(t, CPU, tsr.Device())
	assert.Equal(t, "cpu", tsr.Device().String())

	cuda := Device{Kind: "cuda", Index: 1}
	assert.Equal(t, "cuda:1", cuda.String())

	moved := To(tsr, cuda)
	assert.NotSame(t, tsr, moved)
	assert.Equal(t, cuda, moved.Device())

	// already resident: no copy
	same := To(moved, cuda)
	assert.Same(t, moved, same)
	assert.Same(t, tsr, To(tsr, Device{}))
}

func TestCatRows(t *testing.T) {
	a := NewFloat64FromValues(1, 2)
	b := NewFloat64FromValues(3, 4, 5)
	c, err := CatRows(a, b)
	assert.NoError(t, err)
	assert.Equal(t, []int{5}, c.Shape().Sizes)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, AsFloat64Slice(c))

	m := NewFloat64(2, 3)
	_, err = CatRows(a, m)
	assert.Error(t, err)

	i := NewIntFromValues(1, 2)
	_, err = CatRows(a, i)
	assert.Error(t, err)
}

func TestMatrix(t *testing.T) {
	tsr := NewFloat64(2, 2)
	tsr.SetFloatRowCell(1, 0, 0)
	tsr.SetFloatRowCell(2, 0, 1)
	tsr.SetFloatRowCell(3, 1, 0)
	tsr.SetFloatRowCell(4, 1, 1)

	assert.InDelta(t, -2, mat.Det(tsr), 1.0e-8)
	r, c := tsr.T().Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, tsr.T().At(0, 1))
}
