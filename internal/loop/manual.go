package loop

import "time"

// Manual is a Scheduler driven by explicit calls to Advance. Callbacks run on the
// caller's goroutine in due-time order; timers due at the same instant fire in the
// order they were created. It is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	seq      int
	next     time.Duration
	interval time.Duration
	fn       func()
	stopped  bool
}

func (timer *manualTimer) Stop() bool {
	if timer.stopped {
		return false
	}
	timer.stopped = true
	return true
}

func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		panic("loop: non-positive interval")
	}
	return m.add(interval, interval, fn)
}

func (m *Manual) AfterFunc(delay time.Duration, fn func()) Timer {
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *manualTimer {
	m.seq++
	timer := &manualTimer{
		seq:      m.seq,
		next:     m.now + delay,
		interval: interval,
		fn:       fn,
	}
	m.timers = append(m.timers, timer)
	return timer
}

// Advance moves virtual time forward by d, firing every callback that falls due.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d

	for {
		timer := m.nextDue(target)
		if timer == nil {
			break
		}

		m.now = timer.next
		if timer.interval > 0 {
			timer.next += timer.interval
		} else {
			timer.stopped = true
		}
		timer.fn()
	}

	m.now = target
	m.compact()
}

// Pending returns the number of timers that can still fire.
func (m *Manual) Pending() int {
	count := 0
	for _, timer := range m.timers {
		if !timer.stopped {
			count++
		}
	}
	return count
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var due *manualTimer
	for _, timer := range m.timers {
		if timer.stopped || timer.next > target {
			continue
		}
		if due == nil || timer.next < due.next || (timer.next == due.next && timer.seq < due.seq) {
			due = timer
		}
	}
	return due
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, timer := range m.timers {
		if !timer.stopped {
			live = append(live, timer)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
