package services

import (
	"testing"
	"time"
)

func TestSchedulerRunDue(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var fired []string
	s.Schedule(base.Add(2*time.Minute), func() { fired = append(fired, "b") })
	s.Schedule(base.Add(time.Minute), func() { fired = append(fired, "a") })
	s.Schedule(base.Add(time.Hour), func() { fired = append(fired, "c") })

	if n := s.RunDue(base); n != 0 {
		t.Errorf("Nothing is due yet, ran %d", n)
	}

	// Due entries fire in fire-time order even if scheduled out of order.
	if n := s.RunDue(base.Add(5 * time.Minute)); n != 2 {
		t.Fatalf("Expected 2 entries to run, got %d", n)
	}
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Errorf("Expected [a b], got %v", fired)
	}

	// Entries run at most once.
	if n := s.RunDue(base.Add(5 * time.Minute)); n != 0 {
		t.Errorf("Entries ran twice: %d", n)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 pending entry, got %d", s.Len())
	}

	if n := s.RunDue(base.Add(2 * time.Hour)); n != 1 {
		t.Errorf("Expected final entry to run, got %d", n)
	}
}

func TestSchedulerFiresAtExactTime(t *testing.T) {
	s := NewScheduler()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ran := false
	s.Schedule(at, func() { ran = true })
	s.RunDue(at)
	if !ran {
		t.Error("Entry due exactly now did not fire")
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewScheduler()
	s.Start(time.Millisecond)
	s.Stop()
	s.Stop()
}
