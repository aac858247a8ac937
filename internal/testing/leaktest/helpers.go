// Package leaktest catches goroutines left running by a test, such as
// oracle delivery timers or retry workers that were never shut down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
	stackBufSize  = 1 << 16
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits for goroutines to wind down, then fails the test if more than
// tolerance extra goroutines are still alive. Stacks are logged on failure.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.GC()
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		buf := make([]byte, stackBufSize)
		n := runtime.Stack(buf, true)
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d\n%s",
			g.before, after, leaked, tolerance, buf[:n])
	}
}

// Run executes fn and checks that it left no goroutines behind
func Run(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
