package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestSlogBridge_ForwardsRecords(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)

	logger.Slog().Info("points awarded", "fan_id", "fan-1", "points", 50)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "points awarded" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["fan_id"] != "fan-1" {
		t.Fatalf("unexpected fan_id field: %v", fields["fan_id"])
	}
}

func TestSlogBridge_RespectsLevel(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.InfoLevel)

	logger.Slog().Debug("noise")

	if got := logs.Len(); got != 0 {
		t.Fatalf("expected debug record filtered, got %d entries", got)
	}
}

func TestSlogBridge_GroupPrefixesKeys(t *testing.T) {
	logger, logs := newObservedLogger(zapcore.DebugLevel)

	logger.Slog().WithGroup("match").Info("settled", "id", "match-1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["match.id"] != "match-1" {
		t.Fatalf("expected grouped key match.id, got %v", fields)
	}
}

func TestMirror_ReceivesAcceptedRecords(t *testing.T) {
	logger, _ := newObservedLogger(zapcore.InfoLevel)

	var (
		gotMsg   string
		gotLevel Level
		calls    int
	)
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		calls++
		gotMsg = msg
		gotLevel = level
	})
	defer SetMirror(nil)

	logger.Info("streak swept", "incremented", 3)
	logger.Debug("filtered by level")

	if calls != 1 {
		t.Fatalf("expected 1 mirrored record, got %d", calls)
	}
	if gotMsg != "streak swept" {
		t.Fatalf("unexpected mirrored message: %q", gotMsg)
	}
	if gotLevel != LevelInfo {
		t.Fatalf("unexpected mirrored level: %s", gotLevel)
	}
}
