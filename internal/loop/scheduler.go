// Package loop provides the single-goroutine event loop the journey timers run on.
//
// Every callback scheduled through a Scheduler runs on the same goroutine, one at a
// time, so the components sharing state never need to lock against each other.
package loop

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped it; false means
	// the timer had already been stopped or a one-shot timer already fired.
	Stop() bool
}

// Scheduler creates timers. A stopped timer never invokes its callback again, even
// when a tick was already due.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
	AfterFunc(delay time.Duration, fn func()) Timer
}
