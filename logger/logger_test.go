package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNoopLogger ensures the noop logger implements the interface and
// tolerates every call shape without panicking.
func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()

	var _ Logger = l

	l.Debug("debug", String("k", "v"))
	l.Info("info", Int("n", 1))
	l.Warn("warn", Bool("b", true))
	l.Error("error", Error(errors.New("boom")))
	l.Infof("formatted %d", 42)

	derived := l.With(Duration("elapsed", time.Second)).Named("sub")
	derived.Info("derived logger works")

	assert.NoError(t, l.Sync())
}

func TestFieldAccessors(t *testing.T) {
	f := String("method", "GET")
	assert.Equal(t, "method", f.Key())
	assert.Equal(t, "GET", f.Value())
	assert.Equal(t, "method", f.ZapField().Key)

	n := Int("status", 200)
	assert.Equal(t, "status", n.Key())
	assert.EqualValues(t, 200, n.Value())
}

func TestLoggerFromContext(t *testing.T) {
	// Absent logger falls back to the global instance.
	assert.NotNil(t, LoggerFromContext(context.Background()))

	l := NewNoopLogger()
	ctx := WithLogger(context.Background(), l)
	assert.Equal(t, l, LoggerFromContext(ctx))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "fatal", "unknown"} {
		l := NewLogger(LoggingConfig{Level: level, Format: "json"})
		assert.NotNil(t, l, "level %s", level)
	}
}
