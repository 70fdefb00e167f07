package envelope

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	e := New()
	if e.MaxSourceBytes != DefaultMaxSourceBytes {
		t.Errorf("MaxSourceBytes = %d, want %d", e.MaxSourceBytes, DefaultMaxSourceBytes)
	}
	if e.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d, want %d", e.MaxTokens, DefaultMaxTokens)
	}
	if e.MaxArenaNodes != DefaultMaxArenaNodes {
		t.Errorf("MaxArenaNodes = %d, want %d", e.MaxArenaNodes, DefaultMaxArenaNodes)
	}
	if e.MaxRecursionDepth != DefaultMaxRecursionDepth {
		t.Errorf("MaxRecursionDepth = %d, want %d", e.MaxRecursionDepth, DefaultMaxRecursionDepth)
	}
	if e.Deadline != DefaultDeadline {
		t.Errorf("Deadline = %v, want %v", e.Deadline, DefaultDeadline)
	}
}

func TestNewOptionsOverrideDefaults(t *testing.T) {
	e := New(
		WithMaxSourceBytes(1024),
		WithMaxTokens(10),
		WithMaxArenaNodes(20),
		WithMaxRecursionDepth(5),
		WithDeadline(time.Second),
	)
	if e.MaxSourceBytes != 1024 || e.MaxTokens != 10 || e.MaxArenaNodes != 20 ||
		e.MaxRecursionDepth != 5 || e.Deadline != time.Second {
		t.Fatalf("got %#v, want all overrides applied", e)
	}
}

func TestClockExpired(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	nowFn := func() time.Time { return now }

	c := NewClock(time.Second, nowFn)
	if c.Expired() {
		t.Fatal("Expired() = true immediately after start, want false")
	}

	now = base.Add(2 * time.Second)
	if !c.Expired() {
		t.Fatal("Expired() = false after deadline elapsed, want true")
	}
}

func TestClockZeroDeadlineNeverExpires(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	nowFn := func() time.Time { return now }

	c := NewClock(0, nowFn)
	now = base.Add(24 * time.Hour)
	if c.Expired() {
		t.Fatal("Expired() = true with zero deadline, want false (no deadline configured)")
	}
}
