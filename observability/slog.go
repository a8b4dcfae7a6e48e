package observability

import (
	"context"
	"log/slog"
	"time"
)

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger to Logger. A nil logger uses
// slog.Default().
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

func (s slogLogger) Debug(msg string, fields ...Field) { s.l.Debug(msg, attrs(fields)...) }
func (s slogLogger) Info(msg string, fields ...Field)  { s.l.Info(msg, attrs(fields)...) }
func (s slogLogger) Warn(msg string, fields ...Field)  { s.l.Warn(msg, attrs(fields)...) }
func (s slogLogger) Error(msg string, fields ...Field) { s.l.Error(msg, attrs(fields)...) }

func (s slogLogger) With(fields ...Field) Logger {
	return slogLogger{l: s.l.With(attrs(fields)...)}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key(), f.Value()))
	}
	return out
}

// NewSlogTracer returns a tracer that logs every finished span at debug
// level with its duration, tags and error.
func NewSlogTracer(l *slog.Logger) Tracer {
	if l == nil {
		l = slog.Default()
	}
	return slogTracer{l: l}
}

type slogTracer struct {
	l *slog.Logger
}

func (t slogTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	return ctx, &slogSpan{l: t.l, ctx: ctx, name: name, start: time.Now()}
}

type slogSpan struct {
	l     *slog.Logger
	ctx   context.Context
	name  string
	start time.Time
	tags  []any
	err   error
}

func (s *slogSpan) SetTag(key string, value interface{}) {
	s.tags = append(s.tags, slog.Any(key, value))
}

func (s *slogSpan) SetError(err error) { s.err = err }

func (s *slogSpan) Finish() {
	args := append([]any{slog.String("span", s.name), slog.Duration("duration", time.Since(s.start))}, s.tags...)
	if s.err != nil {
		args = append(args, slog.Any("error", s.err))
	}
	s.l.DebugContext(s.ctx, "span finished", args...)
}
