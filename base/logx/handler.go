// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes compact level-colored
// console lines in a fixed "name | message key=value ..." layout.
// Debug is green, warnings yellow, errors red; info uses the
// terminal default. Groups are flattened into dotted key prefixes.
type Handler struct {
	mu    *sync.Mutex // shared across clones; serializes writes
	out   *termenv.Output
	level slog.Leveler

	// name is the subsystem name column, taken from the [LoggerKey] attr.
	name  string
	attrs []slog.Attr
	group string
}

// NewHandler returns a new console [Handler] writing to the given
// writer at the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: termenv.NewOutput(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one console line for the given record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	name := h.name
	var b strings.Builder
	fmt.Fprintf(&b, "%-18.18s | %s", name, r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value)
		return true
	})
	line := h.out.String(b.String())
	switch {
	case r.Level >= slog.LevelError:
		line = line.Foreground(termenv.ANSIRed)
	case r.Level >= slog.LevelWarn:
		line = line.Foreground(termenv.ANSIYellow)
	case r.Level < slog.LevelInfo:
		line = line.Foreground(termenv.ANSIGreen)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line.String())
	return err
}

// WithAttrs returns a new handler with the given attributes added.
// The [LoggerKey] attribute is lifted out into the name column.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	for _, a := range attrs {
		if a.Key == LoggerKey && h.group == "" {
			nh.name = a.Value.String()
			continue
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		nh.attrs = append(nh.attrs, slog.Attr{Key: key, Value: a.Value})
	}
	return nh
}

// WithGroup returns a new handler prefixing subsequent attribute
// keys with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := h.clone()
	if nh.group == "" {
		nh.group = name
	} else {
		nh.group += "." + name
	}
	return nh
}

func (h *Handler) clone() *Handler {
	return &Handler{
		mu:    h.mu,
		out:   h.out,
		level: h.level,
		name:  h.name,
		attrs: append([]slog.Attr(nil), h.attrs...),
		group: h.group,
	}
}
