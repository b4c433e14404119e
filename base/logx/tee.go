// Copyright (c) 2025, Noisefold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"errors"
	"log/slog"
)

// Tee returns a [slog.Handler] that forwards each record to all of
// the given handlers that are enabled for its level.
func Tee(handlers ...slog.Handler) slog.Handler {
	return teeHandler(handlers)
}

type teeHandler []slog.Handler

func (th teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range th {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (th teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range th {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (th teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := make(teeHandler, len(th))
	for i, h := range th {
		nh[i] = h.WithAttrs(attrs)
	}
	return nh
}

func (th teeHandler) WithGroup(name string) slog.Handler {
	nh := make(teeHandler, len(th))
	for i, h := range th {
		nh[i] = h.WithGroup(name)
	}
	return nh
}
