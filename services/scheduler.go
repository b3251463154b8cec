package services

import (
	"sort"
	"sync"
	"time"
)

// Scheduler queues (fireTime, action) pairs and fires them from a single
// ticker loop. Actions must re-check current state before mutating anything:
// an entry can go stale between scheduling and firing (its target already
// resolved), and a stale fire is expected to be a silent no-op. Entries are
// never cancelled.
type Scheduler struct {
	mu      sync.Mutex
	entries []schedulerEntry
	stop    chan struct{}
	stopped sync.Once
}

type schedulerEntry struct {
	at  time.Time
	run func()
}

// NewScheduler creates an idle scheduler. Call Start to drive it, or RunDue
// directly for deterministic tests.
func NewScheduler() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

// Schedule registers an action to run once the given time has passed.
func (s *Scheduler) Schedule(at time.Time, run func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, schedulerEntry{at: at, run: run})
}

// RunDue fires every entry whose time is at or before now, in fire-time
// order, and returns how many ran. Each entry runs at most once.
func (s *Scheduler) RunDue(now time.Time) int {
	s.mu.Lock()
	var due, pending []schedulerEntry
	for _, e := range s.entries {
		if !e.at.After(now) {
			due = append(due, e)
		} else {
			pending = append(pending, e)
		}
	}
	s.entries = pending
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, e := range due {
		e.run()
	}
	return len(due)
}

// Start launches the ticker loop. It returns immediately.
func (s *Scheduler) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.RunDue(time.Now())
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop tears down the ticker loop. Pending entries are discarded.
func (s *Scheduler) Stop() {
	s.stopped.Do(func() { close(s.stop) })
}

// Len returns the number of pending entries.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
