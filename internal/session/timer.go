package session

import (
	"sync"
	"time"
)

// Scheduler issues cancellable one-shot delays tied to a single session's
// lifetime. Once stopped, pending callbacks never run and new ones are
// dropped, so a delayed continuation cannot mutate a dead session.
type Scheduler struct {
	mu      sync.Mutex
	stopped bool
	next    int
	timers  map[int]*time.Timer
}

// NewScheduler returns a ready scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*time.Timer)}
}

// After runs fn on its own goroutine after d, unless cancelled or the
// scheduler is stopped first. The returned cancel is idempotent.
func (s *Scheduler) After(d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return func() {}
	}

	id := s.next
	s.next++

	timer := time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()
		fn()
	})
	s.timers[id] = timer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t, ok := s.timers[id]; ok {
			t.Stop()
			delete(s.timers, id)
		}
	}
}

// Stop cancels every pending delay and rejects future ones.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
