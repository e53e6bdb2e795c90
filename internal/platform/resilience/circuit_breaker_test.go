package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterConsecutiveBackendFailures(t *testing.T) {
	b := NewCircuitBreaker(3, 10*time.Second, 1)

	now := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("call %d blocked while closed: %v", i, err)
		}
		b.RecordFailure()
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("below threshold, want closed, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("at threshold, want open, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("open breaker let a call through: %v", err)
	}
}

func TestCircuitBreaker_HalfOpenProbeDecidesRecovery(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Second, 1)

	now := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("want open, got %s", state)
	}

	// A failed probe after the open window re-opens immediately.
	now = now.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe blocked: %v", err)
	}
	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("failed probe did not re-open the breaker: %v", err)
	}

	// A successful probe closes it again.
	now = now.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("second probe blocked: %v", err)
	}
	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("after successful probe, want closed, got %s", state)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker blocked a call: %v", err)
	}
}
