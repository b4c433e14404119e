// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandReproducible(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	a.Seed(42)
	first := a.Float64()
	a.Seed(42)
	assert.Equal(t, first, a.Float64())
}

func TestSeedUsesPrivateSource(t *testing.T) {
	r := NewGlobalRand()
	assert.Nil(t, r.Rand)
	r.Seed(17)
	assert.NotNil(t, r.Rand)

	o := NewSysRand(17)
	assert.Equal(t, o.Int63(), r.Int63())
}

func TestSeeds(t *testing.T) {
	var sd Seeds
	sd.Init(4)
	assert.Equal(t, Seeds{1, 2, 3, 4}, sd)

	r := NewSysRand(0)
	sd.Set(2, r)
	o := NewSysRand(3)
	assert.Equal(t, o.Float64(), r.Float64())

	sd.NewSeeds()
	assert.NotEqual(t, int64(1), sd[0])
	assert.Equal(t, sd[0]+1, sd[1])
}
