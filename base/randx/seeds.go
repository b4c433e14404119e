// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "time"

// Seeds is a set of random seeds, typically one per sample in a batch.
type Seeds []int64

// Init allocates given number of seeds and initializes them to
// sequential numbers 1..n
func (rs *Seeds) Init(n int) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = int64(i) + 1
	}
}

// Set seeds the given [Rand] source with the seed at the given index.
func (rs *Seeds) Set(idx int, rnd Rand) {
	rnd.Seed((*rs)[idx])
}

// NewSeeds sets a new set of random seeds based on current time
func (rs *Seeds) NewSeeds() {
	rn := time.Now().UnixNano()
	for i := range *rs {
		(*rs)[i] = rn + int64(i)
	}
}
