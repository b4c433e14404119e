// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging layer used across the module,
// built on [log/slog]: a level-colored console handler, a bounded
// in-memory capture of recent records, and a writer adapter that
// turns redirected output streams into log records.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level for console output.
// It defaults per build tags (info normally, debug for -tags debug).
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(defaultUserLevel)
	return lv
}()

// LoggerKey is the attribute key carrying the subsystem name of a logger,
// rendered as the name column of console output.
const LoggerKey = "logger"

// capture retains the most recent records across all loggers,
// so a host process can surface them after the fact.
var capture = NewCapture(1000)

// defaultHandler is the handler that [Logger] builds loggers on.
// nil until [Configure] is called, in which case loggers fall back
// to the process default slog handler.
var defaultHandler slog.Handler

// Configure installs the module's console handler on the given writer
// (os.Stderr if nil), teed into the in-memory capture, as the process
// default slog handler. Subsequent [Logger] calls build on it.
func Configure(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	defaultHandler = Tee(NewHandler(w, UserLevel), capture)
	slog.SetDefault(slog.New(defaultHandler))
}

// Logger returns a logger for the named subsystem. Records carry the
// name as the [LoggerKey] attribute, which the console handler renders
// as the name column. Before [Configure] is called, the returned logger
// uses the process default handler.
func Logger(name string) *slog.Logger {
	h := defaultHandler
	if h == nil {
		h = slog.Default().Handler()
	}
	return slog.New(h).With(LoggerKey, name)
}

// Records returns a copy of the captured recent log records,
// oldest first.
func Records() []Record {
	return capture.Records()
}
