package client

import "time"

// Clock abstracts time for the controllers so debounce behaviour is
// testable without real sleeps.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules fn after d and returns a handle that can
	// cancel it.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable scheduled call.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewRealClock returns a Clock backed by the time package.
func NewRealClock() Clock { return realClock{} }
