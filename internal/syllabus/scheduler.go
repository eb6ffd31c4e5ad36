package syllabus

import (
	"sync/atomic"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, as opposed to it having already fired or stopped.
	Stop() bool
}

// Scheduler defers presenter callbacks. Implementations must run callbacks
// on the same goroutine that drives the presenter.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ImmediateScheduler runs every callback synchronously, so transitions
// settle before AfterFunc returns.
type ImmediateScheduler struct{}

func (ImmediateScheduler) AfterFunc(_ time.Duration, fn func()) Timer {
	fn()
	return firedTimer{}
}

type firedTimer struct{}

func (firedTimer) Stop() bool { return false }

// LoopScheduler waits on a real clock and then hands the callback to post,
// which is expected to enqueue it on the owning event loop.
type LoopScheduler struct {
	post func(func())
}

// NewLoopScheduler creates a scheduler that delivers callbacks through post.
func NewLoopScheduler(post func(func())) *LoopScheduler {
	return &LoopScheduler{post: post}
}

func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		s.post(func() {
			if lt.stopped.Swap(true) {
				return
			}
			fn()
		})
	})
	return lt
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return !t.stopped.Swap(true)
}

// ManualScheduler is a Scheduler for tests. Time only moves on Advance.
type ManualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at    time.Duration
	fn    func()
	done  bool
	order int
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{at: s.now + d, fn: fn, order: len(s.timers)}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in time order.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.done = true
		next.fn()
	}
	s.now = target
}

func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.done || t.at > limit {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.order < next.order) {
			next = t
		}
	}
	return next
}

// Pending returns how many callbacks are still scheduled.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.done {
			n++
		}
	}
	return n
}
