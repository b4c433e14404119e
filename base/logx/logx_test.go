// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelInfo)
	lg := slog.New(NewHandler(&buf, lv)).With(LoggerKey, "noise")

	lg.Debug("hidden")
	lg.Info("hello", "n", 3)
	lg.Warn("careful")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "noise")
	assert.Contains(t, out, "| hello n=3")
	assert.Contains(t, out, "careful")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestCapture(t *testing.T) {
	cp := NewCapture(3)
	lg := slog.New(cp).With(LoggerKey, "imagex")
	for i := 0; i < 5; i++ {
		lg.Info("msg", "i", i)
	}
	recs := cp.Records()
	assert.Len(t, recs, 3)
	assert.Equal(t, "imagex", recs[0].Name)
	assert.Equal(t, "msg", recs[2].Message)
}

func TestTee(t *testing.T) {
	var buf bytes.Buffer
	cp := NewCapture(10)
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelWarn)
	lg := slog.New(Tee(NewHandler(&buf, lv), cp))

	lg.Info("quiet")
	lg.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Len(t, cp.Records(), 2)
}

func TestLineWriter(t *testing.T) {
	cp := NewCapture(10)
	lw := NewLineWriter(slog.New(cp), slog.LevelError)

	n, err := lw.Write([]byte("one\ntwo\npart"))
	assert.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Len(t, cp.Records(), 2)

	lw.Write([]byte("ial\n"))
	recs := cp.Records()
	assert.Len(t, recs, 3)
	assert.Equal(t, "partial", recs[2].Message)
	assert.Equal(t, slog.LevelError, recs[2].Level)

	lw.Write([]byte("tail"))
	lw.Flush()
	assert.Equal(t, "tail", cp.Records()[3].Message)
}
