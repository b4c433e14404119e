// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheHome(t *testing.T) {
	t.Setenv("NOISEFOLD_HOME", "/tmp/nf")
	assert.Equal(t, "/tmp/nf", CacheHome())

	t.Setenv("NOISEFOLD_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")
	assert.Equal(t, filepath.Join("/tmp/cache", "noisefold"), CacheHome())
}

func TestDebugPath(t *testing.T) {
	t.Setenv("NOISEFOLD_DEBUG_PATH", "/tmp/dbg")
	assert.Equal(t, "/tmp/dbg", DebugPath())

	t.Setenv("NOISEFOLD_DEBUG_PATH", "")
	t.Setenv("NOISEFOLD_HOME", "/tmp/nf")
	assert.Equal(t, filepath.Join("/tmp/nf", "debug-out"), DebugPath())
}
