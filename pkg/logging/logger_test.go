// pkg/logging/logger_test.go
package logging

import (
	"context"
	"errors"
	"testing"
)

func TestWithSessionIDRoundTrip(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc123")
	if got := GetSessionID(ctx); got != "abc123" {
		t.Errorf("GetSessionID() = %q, want %q", got, "abc123")
	}
}

func TestWithSessionIDGeneratesWhenEmpty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")
	if GetSessionID(ctx) == "" {
		t.Error("empty session ID should be replaced with a generated one")
	}
}

func TestGetSessionIDMissing(t *testing.T) {
	if got := GetSessionID(context.Background()); got != "" {
		t.Errorf("GetSessionID() = %q, want empty", got)
	}
}

func TestGenerateSessionIDUnique(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	if a == b {
		t.Errorf("GenerateSessionID() returned %q twice", a)
	}
	if len(a) != 16 {
		t.Errorf("session ID %q has length %d, want 16", a, len(a))
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")

	wrapped := WrapError(base, "loading level %d", 3)
	if wrapped == nil {
		t.Fatal("WrapError() returned nil for a non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the original")
	}
	if wrapped.Error() != "loading level 3: boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestWrapErrorNil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("ORBIT_LOG_LEVEL", "DEBUG")
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if !logger.Enabled(context.Background(), -4) {
		t.Error("DEBUG level should enable debug logging")
	}
}

func TestLoggerDefaultsToInfo(t *testing.T) {
	t.Setenv("ORBIT_LOG_LEVEL", "")
	logger := NewLogger()
	if logger.Enabled(context.Background(), -4) {
		t.Error("default level should not enable debug logging")
	}
	if !logger.Enabled(context.Background(), 0) {
		t.Error("default level should enable info logging")
	}
}
