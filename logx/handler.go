// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes text records whose level
// is shown in color (when the output supports it) and filtered by
// the [UserLevel] in effect when the last handler was made.
type Handler struct {
	slog.Handler
	out *termenv.Output
}

// levelVar tracks [UserLevel] for the handlers made by [NewHandler].
var levelVar slog.LevelVar

// NewHandler returns a new [Handler] writing to the given writer,
// applying the current [UserLevel].
func NewHandler(w io.Writer) *Handler {
	levelVar.Set(UserLevel)
	out := termenv.NewOutput(w)
	h := &Handler{out: out}
	h.Handler = slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &levelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				lv, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(h.colorLevel(lv))
				}
			}
			return a
		},
	})
	return h
}

// WithAttrs returns a new [Handler] with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), out: h.out}
}

// WithGroup returns a new [Handler] with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), out: h.out}
}

func (h *Handler) colorLevel(lv slog.Level) string {
	s := lv.String()
	var c termenv.Color
	switch {
	case lv >= slog.LevelError:
		c = h.out.Color("1")
	case lv >= slog.LevelWarn:
		c = h.out.Color("3")
	case lv >= slog.LevelInfo:
		c = h.out.Color("4")
	default:
		c = h.out.Color("8")
	}
	return h.out.String(s).Foreground(c).Bold().String()
}

// SetDefaultLogger sets the default logger to be a [Handler]
// writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
