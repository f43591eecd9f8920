package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedDelay_FirstCallDoesNotWait(t *testing.T) {
	t.Parallel()

	rl := NewFixedDelay(200 * time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("first call should not wait, took %v", elapsed)
	}
}

func TestFixedDelay_SubsequentCallsWait(t *testing.T) {
	t.Parallel()

	delay := 100 * time.Millisecond
	rl := NewFixedDelay(delay)

	rl.WaitIfNeeded() // 初回は待機しない

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("second call should wait at least %v, took %v", delay, elapsed)
	}
}
