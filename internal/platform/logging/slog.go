package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap/zapcore"
)

// Slog adapts the logger to the standard log/slog API for request-scoped
// code. Records pass through the same zap core and mirror as direct calls.
func (l *Logger) Slog() *slog.Logger {
	if l == nil {
		l = NewNop()
	}
	return slog.New(&slogBridge{logger: l})
}

type slogBridge struct {
	logger *Logger
	group  string
	attrs  []any
}

func (b *slogBridge) Enabled(_ context.Context, level slog.Level) bool {
	return b.logger.Zap().Core().Enabled(slogToZapLevel(level))
}

func (b *slogBridge) Handle(ctx context.Context, record slog.Record) error {
	args := make([]any, 0, len(b.attrs)+record.NumAttrs()*2)
	args = append(args, b.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		args = b.appendAttr(args, attr)
		return true
	})
	b.logger.log(ctx, slogToZapLevel(record.Level), record.Message, args)
	return nil
}

func (b *slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &slogBridge{
		logger: b.logger,
		group:  b.group,
		attrs:  append([]any(nil), b.attrs...),
	}
	for _, attr := range attrs {
		next.attrs = b.appendAttr(next.attrs, attr)
	}
	return next
}

func (b *slogBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	prefix := name
	if b.group != "" {
		prefix = b.group + "." + name
	}
	return &slogBridge{
		logger: b.logger,
		group:  prefix,
		attrs:  append([]any(nil), b.attrs...),
	}
}

func (b *slogBridge) appendAttr(args []any, attr slog.Attr) []any {
	if attr.Key == "" {
		return args
	}
	key := attr.Key
	if b.group != "" {
		key = b.group + "." + key
	}
	return append(args, key, attr.Value.Resolve().Any())
}

func slogToZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
