// Package leaktest reports goroutines a test leaves running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultWait is how long Check waits for goroutines to exit before reporting a leak.
	DefaultWait = 500 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline taken at creation.
type GoroutineChecker struct {
	t      testing.TB
	before int
	wait   time.Duration
}

// NewGoroutineChecker records the current goroutine count.
// Long-lived goroutines owned by the code under test (cache janitors, servers)
// should be started before the checker is created.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		t:      t,
		before: runtime.NumGoroutine(),
		wait:   DefaultWait,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// once the wait has elapsed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.wait)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it left goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
