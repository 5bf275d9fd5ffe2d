// Package generationtest provides a manually driven Scheduler so tests can
// fire simulated delays deterministically.
package generationtest

import (
	"sort"
	"sync"
	"time"

	"studymate/internal/generation"
)

type task struct {
	id      int
	due     time.Duration
	f       func()
	stopped bool
	fired   bool
}

// ManualScheduler keeps a virtual clock that only moves on Advance.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	tasks  []*task
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

var _ generation.Scheduler = (*ManualScheduler)(nil)

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) generation.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &task{id: s.nextID, due: s.now + d, f: f}
	s.tasks = append(s.tasks, t)
	return &manualTimer{s: s, t: t}
}

// Advance moves the clock forward by d and runs every task that became due,
// in due order, on the calling goroutine. It returns how many ran.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	var due []*task
	var rest []*task
	for _, t := range s.tasks {
		if !t.stopped && t.due <= s.now {
			t.fired = true
			due = append(due, t)
		} else if !t.stopped {
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	for _, t := range due {
		t.f()
	}
	return len(due)
}

// FireAll runs every outstanding task regardless of its delay.
func (s *ManualScheduler) FireAll() int {
	s.mu.Lock()
	var max time.Duration
	for _, t := range s.tasks {
		if t.due-s.now > max {
			max = t.due - s.now
		}
	}
	s.mu.Unlock()
	return s.Advance(max)
}

// Outstanding counts scheduled tasks that have neither fired nor stopped.
func (s *ManualScheduler) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

type manualTimer struct {
	s *ManualScheduler
	t *task
}

func (mt *manualTimer) Stop() bool {
	mt.s.mu.Lock()
	defer mt.s.mu.Unlock()
	if mt.t.stopped || mt.t.fired {
		return false
	}
	mt.t.stopped = true
	for i, t := range mt.s.tasks {
		if t == mt.t {
			mt.s.tasks = append(mt.s.tasks[:i], mt.s.tasks[i+1:]...)
			break
		}
	}
	return true
}
