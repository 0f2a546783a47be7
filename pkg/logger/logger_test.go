package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"rentwise/internal/config"
)

func TestNewHonoursLevel(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error should be enabled at warn level")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "chatty"}); err == nil {
		t.Fatal("expected an error")
	}
}
