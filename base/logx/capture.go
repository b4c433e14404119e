// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Record is one captured log entry.
type Record struct {
	Time    time.Time
	Name    string
	Level   slog.Level
	Message string
}

// Capture is a [slog.Handler] that retains the most recent records
// in memory, bounded to a maximum length, so that a host process can
// surface recent logs (e.g., over an API) after the fact.
type Capture struct {
	state *captureState

	// name is the subsystem name from the [LoggerKey] attr.
	name string
}

type captureState struct {
	mu     sync.Mutex
	maxLen int
	recs   []Record
}

// NewCapture returns a new [Capture] retaining at most maxLen records.
func NewCapture(maxLen int) *Capture {
	return &Capture{state: &captureState{maxLen: maxLen}}
}

// Records returns a copy of the captured records, oldest first.
func (cp *Capture) Records() []Record {
	cp.state.mu.Lock()
	defer cp.state.mu.Unlock()
	return append([]Record(nil), cp.state.recs...)
}

// Enabled reports whether the handler handles records at the given level.
// Capture retains everything its parent logger emits.
func (cp *Capture) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

// Handle appends the record to the capture, dropping the oldest
// records beyond the maximum length.
func (cp *Capture) Handle(ctx context.Context, r slog.Record) error {
	st := cp.state
	st.mu.Lock()
	defer st.mu.Unlock()
	st.recs = append(st.recs, Record{Time: r.Time, Name: cp.name, Level: r.Level, Message: r.Message})
	if over := len(st.recs) - st.maxLen; over > 0 {
		st.recs = st.recs[over:]
	}
	return nil
}

// WithAttrs returns a capture that lifts the [LoggerKey] attribute
// into the record name; all captures share the same record store.
func (cp *Capture) WithAttrs(attrs []slog.Attr) slog.Handler {
	nc := &Capture{state: cp.state, name: cp.name}
	for _, a := range attrs {
		if a.Key == LoggerKey {
			nc.name = a.Value.String()
		}
	}
	return nc
}

// WithGroup returns the capture unchanged; grouped attributes are
// not retained.
func (cp *Capture) WithGroup(name string) slog.Handler { return cp }
