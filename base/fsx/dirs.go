// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx resolves the filesystem locations the module reads and
// writes: the cache home for downloaded model data and the output
// directory for debug snapshots.
package fsx

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// CacheHome returns the cache directory for this module's data:
// $NOISEFOLD_HOME if set, else $XDG_CACHE_HOME/noisefold, else
// ~/.cache/noisefold. A leading ~ in the environment values is
// expanded to the user's home directory.
func CacheHome() string {
	if dir := os.Getenv("NOISEFOLD_HOME"); dir != "" {
		return expand(dir)
	}
	cache := os.Getenv("XDG_CACHE_HOME")
	if cache == "" {
		home, err := homedir.Dir()
		if err != nil {
			home = "."
		}
		cache = filepath.Join(home, ".cache")
	} else {
		cache = expand(cache)
	}
	return filepath.Join(cache, "noisefold")
}

// DebugPath returns the directory debug snapshots are written to:
// $NOISEFOLD_DEBUG_PATH if set, else a debug-out directory under
// [CacheHome].
func DebugPath() string {
	if dir := os.Getenv("NOISEFOLD_DEBUG_PATH"); dir != "" {
		return expand(dir)
	}
	return filepath.Join(CacheHome(), "debug-out")
}

func expand(path string) string {
	ep, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return ep
}
