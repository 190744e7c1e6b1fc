package engine

import (
	"sync"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// stateStore holds the two counters behind a mutex. All writes go through the
// add methods so clamping cannot be bypassed; the lock is held only for the
// clamp-and-write itself, never across waits.
type stateStore struct {
	mu     sync.Mutex
	stress int
	alert  int
}

func newStateStore() *stateStore {
	return &stateStore{
		stress: domain.InitialStress,
		alert:  domain.InitialAlert,
	}
}

// snapshot returns a consistent copy of both counters.
func (s *stateStore) snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Snapshot{Stress: s.stress, Alert: s.alert}
}

// addStress shifts the stress counter by delta, clamping to its range. It
// returns the new value and whether the counter actually moved.
func (s *stateStore) addStress(delta int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := domain.ClampStress(s.stress + delta)
	moved := next != s.stress
	s.stress = next
	return next, moved
}

// addAlert shifts the boss alert counter by delta, clamping to its range. It
// returns the new value and whether the counter actually moved; a clamped
// write at the ceiling or floor reports false.
func (s *stateStore) addAlert(delta int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := domain.ClampAlert(s.alert + delta)
	moved := next != s.alert
	s.alert = next
	return next, moved
}
