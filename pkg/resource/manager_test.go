// pkg/resource/manager_test.go
package resource

import (
	"context"
	"testing"
	"time"

	"github.com/opd-ai/go-orbit/pkg/config"
)

func testEnvConfig() *config.EnvironmentConfig {
	return &config.EnvironmentConfig{
		MaxMemoryMB:           500,
		MaxGoroutines:         5,
		ShutdownTimeout:       2 * time.Second,
		ResourceCheckInterval: 50 * time.Millisecond,
	}
}

func TestStartAndShutdown(t *testing.T) {
	rm := NewResourceManager(testEnvConfig())

	if err := rm.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := rm.Start(); err == nil {
		t.Error("second Start() should fail")
	}

	if err := rm.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	// Shutting down twice is harmless.
	if err := rm.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown() failed: %v", err)
	}
}

func TestStartGoroutineTracksCount(t *testing.T) {
	rm := NewResourceManager(testEnvConfig())

	release := make(chan struct{})
	err := rm.StartGoroutine(context.Background(), "worker", func(context.Context) {
		<-release
	})
	if err != nil {
		t.Fatalf("StartGoroutine() failed: %v", err)
	}

	if got := rm.GetGoroutineCount(); got != 1 {
		t.Errorf("GetGoroutineCount() = %d, want 1", got)
	}

	close(release)

	deadline := time.After(time.Second)
	for rm.GetGoroutineCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("goroutine count never returned to 0")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStartGoroutineEnforcesLimit(t *testing.T) {
	cfg := testEnvConfig()
	cfg.MaxGoroutines = 1
	rm := NewResourceManager(cfg)

	release := make(chan struct{})
	defer close(release)

	if err := rm.StartGoroutine(context.Background(), "first", func(context.Context) {
		<-release
	}); err != nil {
		t.Fatalf("first StartGoroutine() failed: %v", err)
	}

	if err := rm.StartGoroutine(context.Background(), "second", func(context.Context) {}); err == nil {
		t.Error("StartGoroutine() past the limit should fail")
	}
}

func TestStartGoroutineRecoversPanic(t *testing.T) {
	rm := NewResourceManager(testEnvConfig())

	if err := rm.StartGoroutine(context.Background(), "panicky", func(context.Context) {
		panic("boom")
	}); err != nil {
		t.Fatalf("StartGoroutine() failed: %v", err)
	}

	deadline := time.After(time.Second)
	for rm.GetGoroutineCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("panicking goroutine left count above 0")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestCheckMemoryUsage(t *testing.T) {
	rm := NewResourceManager(testEnvConfig())

	if err := rm.CheckMemoryUsage(); err != nil {
		t.Errorf("CheckMemoryUsage() under a 500MB limit failed: %v", err)
	}
	if rm.GetMemoryUsage() < 0 {
		t.Errorf("GetMemoryUsage() = %d, want non-negative", rm.GetMemoryUsage())
	}

	tight := testEnvConfig()
	tight.MaxMemoryMB = 0
	rm = NewResourceManager(tight)
	if err := rm.CheckMemoryUsage(); err == nil {
		t.Skip("process allocation currently below 1MB")
	}
}
