package core

import "time"

// Timer is a handle to a callback registered with a Scheduler.
type Timer struct {
	due      time.Duration
	interval time.Duration // zero for one-shot timers
	seq      uint64
	fn       func()
	stopped  bool
}

// Stop cancels the timer. A stopped timer never fires again.
// Returns false if the timer was already stopped or had fired (one-shot).
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Scheduler is a deterministic timer queue driven by an external clock.
// Nothing runs in the background: timers fire synchronously from AdvanceTo
// on the caller's goroutine, ordered by due time then registration order.
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, delay after the current time.
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	return s.add(max(delay, 0), 0, fn)
}

// Every runs fn each interval, first at now+interval.
// Panics if interval is not positive.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic("core: Scheduler.Every requires a positive interval")
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		due:      s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
func (s *Scheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now + d)
}

// AdvanceTo moves the clock to t, firing every timer due at or before t.
// Callbacks may register or stop timers, including the one firing.
// Moving backwards is a no-op.
func (s *Scheduler) AdvanceTo(t time.Duration) {
	if t < s.now {
		return
	}
	for {
		next := s.nextDue(t)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.stopped = true
		}
		next.fn()
	}
	s.now = t
	s.compact()
}

// Pending returns the number of timers that can still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// StopAll cancels every registered timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.stopped = true
	}
	s.timers = s.timers[:0]
}

func (s *Scheduler) nextDue(limit time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.stopped || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
