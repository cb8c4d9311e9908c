package core

import (
	"sort"
	"time"
)

// Scheduler is a deterministic one-shot timer queue driven by the simulation
// clock. Everything runs on the single logical game thread: callbacks fire
// inside Advance, which the game calls once per tick before entity updates,
// so timer work never races with the update/render pass.
//
// It fills the role tkinter's after() plays for canvas games: self-
// rescheduling chains (the enemy generator) and delayed UI callbacks (the
// win banner) with cancelable handles.
type Scheduler struct {
	now     float64
	nextSeq int
	timers  []*Timer
}

// Timer is a handle for a scheduled callback. Stop cancels it if it has not
// fired yet.
type Timer struct {
	when    float64
	seq     int
	fn      func()
	stopped bool
}

// Stop cancels the timer. Stopping an already-fired or already-stopped
// timer is a no-op.
func (t *Timer) Stop() {
	t.stopped = true
}

// NewScheduler creates an empty scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulation time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run once d from now. Callbacks scheduled for the
// same instant fire in scheduling order.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	t := &Timer{
		when: s.now + d.Seconds(),
		seq:  s.nextSeq,
		fn:   fn,
	}
	s.nextSeq++

	i := sort.Search(len(s.timers), func(i int) bool {
		o := s.timers[i]
		return o.when > t.when || (o.when == t.when && o.seq > t.seq)
	})
	s.timers = append(s.timers, nil)
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
	return t
}

// Advance moves the clock forward by dt seconds and fires every due
// callback in order. A callback may schedule further timers; if those are
// already due they fire within the same Advance call.
func (s *Scheduler) Advance(dt float64) {
	s.now += dt
	for len(s.timers) > 0 && s.timers[0].when <= s.now {
		t := s.timers[0]
		s.timers = s.timers[1:]
		if !t.stopped {
			t.fn()
		}
	}
}

// Pending returns the number of scheduled, unfired timers, including
// stopped ones that have not been drained yet. Used by tests.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
