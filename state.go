package syslog

import (
	"io"
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of the client
type State struct {
	Initialized atomic.Bool
	MinLevel    atomic.Int64

	// Delivery counters. Kept atomic rather than guarded so the
	// lock-timeout path can count its failure without holding the guard.
	SendCount atomic.Uint64
	FailCount atomic.Uint64

	FallbackWriter atomic.Value // stores *sink
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// guard is a mutual-exclusion primitive with a bounded acquisition wait.
// A 1-buffered channel holds the lock token; acquire gives up after the
// timeout instead of blocking the caller indefinitely.
type guard struct {
	ch chan struct{}
}

func newGuard() *guard {
	return &guard{ch: make(chan struct{}, 1)}
}

// acquire takes the guard, giving up after timeout. The uncontended case
// avoids arming a timer.
func (g *guard) acquire(timeout time.Duration) bool {
	select {
	case g.ch <- struct{}{}:
		return true
	default:
	}
	select {
	case g.ch <- struct{}{}:
		return true
	case <-time.After(timeout):
		return false
	}
}

// lock blocks until the guard is held. Administrative paths only.
func (g *guard) lock() {
	g.ch <- struct{}{}
}

func (g *guard) release() {
	<-g.ch
}
