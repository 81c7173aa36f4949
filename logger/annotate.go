package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error is logged through a
// handler built by Options.NewHandler, the pairs are emitted as top-level attributes.
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Time{}, slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string { return a.err.Error() }

func (a *annotatedError) Unwrap() error { return a.err }

// annotatedErrorHandler expands the attributes of annotated errors found in a record.
type annotatedErrorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotatedErrorHandler)(nil)

func (h *annotatedErrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *annotatedErrorHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		base  []slog.Attr
		extra []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		err, isErr := attr.Value.Any().(error)

		var ae *annotatedError
		if isErr && errors.As(err, &ae) {
			base = append(base, slog.String(attr.Key, err.Error()))
			extra = append(extra, ae.attrs...)
		} else {
			base = append(base, attr)
		}

		return true
	})

	if len(extra) == 0 {
		return h.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(base...)
	r.AddAttrs(extra...)

	return h.inner.Handle(ctx, r)
}

func (h *annotatedErrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotatedErrorHandler) WithGroup(name string) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithGroup(name)}
}
