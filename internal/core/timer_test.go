package core

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, func() { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early: count = %d", count)
	}

	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d, expected 1 at 1s", count)
	}

	// A large jump fires every missed period
	s.Advance(3 * time.Second)
	if count != 4 {
		t.Errorf("count = %d, expected 4 at 4s", count)
	}
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	timer := s.After(300*time.Millisecond, func() { count++ })

	s.Advance(time.Second)
	s.Advance(time.Second)

	if count != 1 {
		t.Errorf("count = %d, expected 1", count)
	}
	if timer.Active() {
		t.Error("one-shot timer should be inactive after firing")
	}
	if timer.Stop() {
		t.Error("Stop() on a fired timer should return false")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler()
	count := 0
	timer := s.Every(time.Second, func() { count++ })

	s.Advance(2 * time.Second)
	if !timer.Stop() {
		t.Error("Stop() on an active timer should return true")
	}
	s.Advance(5 * time.Second)

	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
}

func TestSchedulerStopFromCallback(t *testing.T) {
	s := NewScheduler()
	count := 0
	var timer *Timer
	timer = s.Every(time.Second, func() {
		count++
		if count == 3 {
			timer.Stop()
		}
	})

	s.Advance(10 * time.Second)
	if count != 3 {
		t.Errorf("count = %d, expected 3", count)
	}
}

func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(2*time.Second, func() { order = append(order, "b") })
	s.After(time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "c") })
	s.Every(1500*time.Millisecond, func() { order = append(order, "tick") })

	s.Advance(3 * time.Second)

	expected := []string{"a", "tick", "b", "c", "tick"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
}

func TestSchedulerNowDuringCallback(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(250*time.Millisecond, func() { seen = s.Now() })

	s.Advance(time.Second)

	if seen != 250*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 250ms", seen)
	}
	if s.Now() != time.Second {
		t.Errorf("Now() after advance = %v, expected 1s", s.Now())
	}
}

func TestSchedulerAdvanceToBackwards(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	s.AdvanceTo(500 * time.Millisecond)
	if s.Now() != time.Second {
		t.Errorf("Now() = %v, expected clock to stay at 1s", s.Now())
	}
}

func TestSchedulerStopAll(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, func() { count++ })
	s.After(time.Second, func() { count++ })

	s.StopAll()
	s.Advance(5 * time.Second)

	if count != 0 {
		t.Errorf("count = %d, expected 0", count)
	}
}

func TestSchedulerEveryRejectsZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) should panic")
		}
	}()
	NewScheduler().Every(0, func() {})
}
