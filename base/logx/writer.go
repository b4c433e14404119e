// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
)

// LineWriter is an [io.Writer] that turns everything written to it
// into log records on the given logger, one record per complete line.
// It is the capture point for host processes that redirect stdout or
// stderr of third-party code into the log. Partial lines are buffered
// until a newline arrives. LineWriter is not safe for concurrent use.
type LineWriter struct {
	// Logger receives one record per line.
	Logger *slog.Logger

	// Level is the level to log captured lines at.
	Level slog.Level

	buf []byte
}

// NewLineWriter returns a new [LineWriter] logging to the given
// logger at the given level.
func NewLineWriter(logger *slog.Logger, level slog.Level) *LineWriter {
	return &LineWriter{Logger: logger, Level: level}
}

// Write buffers the given bytes and emits one log record per
// complete line. It never fails.
func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.buf = append(lw.buf, p...)
	for {
		i := bytes.IndexByte(lw.buf, '\n')
		if i < 0 {
			break
		}
		line := string(lw.buf[:i])
		lw.buf = lw.buf[i+1:]
		if line != "" {
			lw.Logger.Log(context.Background(), lw.Level, line)
		}
	}
	return len(p), nil
}

// Flush emits any buffered partial line as a final record.
func (lw *LineWriter) Flush() {
	if len(lw.buf) > 0 {
		lw.Logger.Log(context.Background(), lw.Level, string(lw.buf))
		lw.buf = lw.buf[:0]
	}
}
