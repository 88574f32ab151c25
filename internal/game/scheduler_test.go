package game

import (
	"sync"
	"testing"
	"time"
)

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	queue []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{delay: d, fn: f}
	s.queue = append(s.queue, t)
	return t
}

func (s *manualScheduler) next(d time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.queue {
		if !t.stopped && !t.fired && t.delay == d {
			return t
		}
	}
	return nil
}

func (s *manualScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.queue {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// fire runs the oldest pending callback scheduled with delay d.
func (s *manualScheduler) fire(t *testing.T, d time.Duration) {
	t.Helper()
	timer := s.next(d)
	if timer == nil {
		t.Fatalf("no pending callback with delay %s", d)
	}
	timer.fired = true
	timer.fn()
}

func (s *manualScheduler) tick(t *testing.T) {
	t.Helper()
	s.fire(t, time.Second)
}

func (s *manualScheduler) reveal(t *testing.T) {
	t.Helper()
	s.fire(t, DefaultRevealDelay)
}
