package engine

import (
	"sort"
	"time"
)

// Scheduler runs deferred callbacks on a frame clock. It is advanced by the
// game that owns it, so callbacks always run inside that game's update.
type Scheduler struct {
	now     int64
	seq     int64
	pending []*Timer
}

// Timer is a handle on a scheduled callback.
type Timer struct {
	s        *Scheduler
	due      int64
	period   int64
	seq      int64
	fn       func()
	canceled bool
}

// NewScheduler returns an empty scheduler at frame zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Frames converts d to frames at TPS, rounding up, never less than one.
func Frames(d time.Duration) int64 {
	n := (int64(d)*TPS + int64(time.Second) - 1) / int64(time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// Now returns the number of frames advanced so far.
func (s *Scheduler) Now() int64 { return s.now }

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.add(Frames(d), 0, fn)
}

// Every runs fn every d until the timer is canceled.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	p := Frames(d)
	return s.add(p, p, fn)
}

func (s *Scheduler) add(delay, period int64, fn func()) *Timer {
	s.seq++
	t := &Timer{s: s, due: s.now + delay, period: period, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward frame by frame, firing due callbacks in
// due order. Callbacks may schedule or cancel other timers.
func (s *Scheduler) Advance(frames int) {
	for i := 0; i < frames; i++ {
		s.now++
		s.fireDue()
	}
}

func (s *Scheduler) fireDue() {
	var due []*Timer
	for _, t := range s.pending {
		if !t.canceled && t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.canceled {
			continue
		}
		if t.period > 0 {
			t.due += t.period
		} else {
			t.canceled = true
		}
		t.fn()
	}
	s.compact()
}

func (s *Scheduler) compact() {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.canceled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = live
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.pending {
		t.canceled = true
	}
	s.pending = nil
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Cancel stops the timer. Canceling twice, or a fired one-shot, is a no-op.
func (t *Timer) Cancel() {
	if t != nil {
		t.canceled = true
	}
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.canceled
}
