package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrClosed = errors.New("event loop is not running")

// Loop runs queued callbacks sequentially on the goroutine that called Run.
type Loop struct {
	queue chan func()
	done  chan struct{}

	closeOnce sync.Once
}

func New() *Loop {
	return &Loop{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Run executes callbacks until ctx is cancelled. Timers created on the loop stop
// delivering once Run returns.
func (l *Loop) Run(ctx context.Context) error {
	defer l.closeOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Post queues fn for execution on the loop. It returns false when the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrClosed
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrClosed
	}
}

type loopTimer struct {
	stopped atomic.Bool
	quit    chan struct{}
}

func newLoopTimer() *loopTimer {
	return &loopTimer{quit: make(chan struct{})}
}

func (timer *loopTimer) Stop() bool {
	if !timer.stopped.CompareAndSwap(false, true) {
		return false
	}
	close(timer.quit)
	return true
}

func (l *Loop) Every(interval time.Duration, fn func()) Timer {
	timer := newLoopTimer()
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-timer.quit:
				return
			case <-l.done:
				return
			case <-ticker.C:
				// The tick may sit in the queue while Stop runs on the loop, so the
				// stopped flag is checked again at execution time.
				l.Post(func() {
					if !timer.stopped.Load() {
						fn()
					}
				})
			}
		}
	}()

	return timer
}

func (l *Loop) AfterFunc(delay time.Duration, fn func()) Timer {
	timer := newLoopTimer()
	wait := time.NewTimer(delay)

	go func() {
		defer wait.Stop()

		select {
		case <-timer.quit:
		case <-l.done:
		case <-wait.C:
			l.Post(func() {
				if timer.stopped.CompareAndSwap(false, true) {
					close(timer.quit)
					fn()
				}
			})
		}
	}()

	return timer
}
