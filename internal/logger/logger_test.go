package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestNew tests the New function.
func TestNew(t *testing.T) {
	t.Parallel()

	for _, level := range []zapcore.LevelEnabler{zapcore.DebugLevel, zapcore.ErrorLevel, nil} {
		assert.NotNil(t, New(level))
	}
}

// TestParseLogLevel tests the ParseLogLevel function.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{input: "debug", expected: zapcore.DebugLevel, valid: true},
		{input: "info", expected: zapcore.InfoLevel, valid: true},
		{input: "warn", expected: zapcore.WarnLevel, valid: true},
		{input: "error", expected: zapcore.ErrorLevel, valid: true},
		{input: "dpanic", expected: zapcore.DPanicLevel, valid: true},
		{input: "panic", expected: zapcore.PanicLevel, valid: true},
		{input: "fatal", expected: zapcore.FatalLevel, valid: true},
		{input: "DEBUG", expected: zapcore.DebugLevel, valid: true},
		{input: " Warn ", expected: zapcore.WarnLevel, valid: true},
		{input: "verbose", expected: zapcore.InfoLevel, valid: false},
		{input: "", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("input="+tt.input, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

// TestSetLevel tests the shared level and IsDebugLevel.
//
//nolint:paralleltest // Mutates the shared level.
func TestSetLevel(t *testing.T) {
	originalLevel := Level()
	defer SetLevel(originalLevel)

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, IsDebugLevel())
}

// TestSetLogger tests the SetLogger function.
//
//nolint:paralleltest // Mutates the process-wide logger.
func TestSetLogger(t *testing.T) {
	originalLogger := Logger()
	defer SetLogger(originalLogger)

	newLogger := New(zapcore.DebugLevel)
	SetLogger(newLogger)

	assert.Equal(t, newLogger, Logger())
}

// TestWithKV tests that context fields are attached to every log entry.
//
//nolint:paralleltest // Mutates the process-wide logger.
func TestWithKV(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	originalLogger := Logger()
	defer SetLogger(originalLogger)

	SetLogger(zap.New(core).Sugar())

	ctx := WithKV(context.Background(), "request_id", "42")
	ctx = WithKV(ctx, "method", "GET")

	Infof(ctx, "sent %s", "request")
	WarnKV(ctx, "slow response", "duration", "2s")
	Debug(context.Background(), "no fields")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "sent request", entries[0].Message)
	assert.Equal(t, map[string]any{"request_id": "42", "method": "GET"}, entries[0].ContextMap())

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "2s", entries[1].ContextMap()["duration"])
	assert.Equal(t, "42", entries[1].ContextMap()["request_id"])

	assert.Empty(t, entries[2].ContextMap())
}

// TestFromContext tests the fallback to the process-wide logger.
func TestFromContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // Nil context is handled on purpose.
	assert.NotNil(t, FromContext(nil))
	assert.NotNil(t, FromContext(context.Background()))
}

// TestContextLoggingFunctions tests that logging functions do not panic.
func TestContextLoggingFunctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	Debug(ctx, "debug")
	Debugf(ctx, "debug: %s", "formatted")
	DebugKV(ctx, "debug", "key", "value")
	Info(ctx, "info")
	Infof(ctx, "info: %s", "formatted")
	InfoKV(ctx, "info", "key", "value")
	Warn(ctx, "warn")
	Warnf(ctx, "warn: %s", "formatted")
	WarnKV(ctx, "warn", "key", "value")
	Error(ctx, "error")
	Errorf(ctx, "error: %s", "formatted")
	ErrorKV(ctx, "error", "key", "value")
}

// TestLoggerThreadSafety tests concurrent logging.
func TestLoggerThreadSafety(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)

		go func() {
			defer wg.Done()

			Info(WithKV(context.Background(), "worker", i), "concurrent message")
		}()
	}

	wg.Wait()
}
