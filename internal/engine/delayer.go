package engine

import "time"

// Delayer abstracts the simulated composing latency between messages. The
// delays are presentation pacing, not computation time, so tests swap in an
// instant implementation and the message ordering contract stays identical.
type Delayer interface {
	// After returns a channel that delivers after the given duration.
	After(d time.Duration) <-chan time.Time
}

// RealDelayer waits on the wall clock.
type RealDelayer struct{}

// After implements Delayer using the standard timer.
func (RealDelayer) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// InstantDelayer delivers immediately regardless of the requested duration.
// Intended for tests so scripted sequences run without sleeping.
type InstantDelayer struct{}

// After implements Delayer with an already-fired channel.
func (InstantDelayer) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}
