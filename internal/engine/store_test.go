package engine

import (
	"sync"
	"testing"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

func TestStateStoreInitialValues(t *testing.T) {
	s := newStateStore()
	snap := s.snapshot()
	if snap.Stress != domain.InitialStress {
		t.Errorf("initial stress = %d, want %d", snap.Stress, domain.InitialStress)
	}
	if snap.Alert != domain.InitialAlert {
		t.Errorf("initial alert = %d, want %d", snap.Alert, domain.InitialAlert)
	}
}

func TestStateStoreClamping(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(*stateStore) (int, bool)
		wantValue int
		wantMoved bool
	}{
		{
			name:      "stress clamps at ceiling",
			apply:     func(s *stateStore) (int, bool) { return s.addStress(500) },
			wantValue: domain.StressCeil,
			wantMoved: true,
		},
		{
			name: "stress clamps at floor",
			apply: func(s *stateStore) (int, bool) {
				s.addStress(-40)
				return s.addStress(-40)
			},
			wantValue: domain.StressFloor,
			wantMoved: true,
		},
		{
			name: "stress write at ceiling does not move",
			apply: func(s *stateStore) (int, bool) {
				s.addStress(50)
				return s.addStress(1)
			},
			wantValue: domain.StressCeil,
			wantMoved: false,
		},
		{
			name:      "alert clamps at ceiling",
			apply:     func(s *stateStore) (int, bool) { return s.addAlert(9) },
			wantValue: domain.AlertCeil,
			wantMoved: true,
		},
		{
			name:      "alert write at floor does not move",
			apply:     func(s *stateStore) (int, bool) { return s.addAlert(-1) },
			wantValue: domain.AlertFloor,
			wantMoved: false,
		},
		{
			name: "alert increment at ceiling does not move",
			apply: func(s *stateStore) (int, bool) {
				s.addAlert(5)
				return s.addAlert(1)
			},
			wantValue: domain.AlertCeil,
			wantMoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStateStore()
			value, moved := tt.apply(s)
			if value != tt.wantValue {
				t.Errorf("value = %d, want %d", value, tt.wantValue)
			}
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
		})
	}
}

func TestStateStoreConcurrentWrites(t *testing.T) {
	s := newStateStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					s.addStress(3)
					s.addAlert(1)
				} else {
					s.addStress(-3)
					s.addAlert(-1)
				}
			}
		}(i)
	}
	wg.Wait()

	snap := s.snapshot()
	if snap.Stress < domain.StressFloor || snap.Stress > domain.StressCeil {
		t.Errorf("stress %d escaped its range after concurrent writes", snap.Stress)
	}
	if snap.Alert < domain.AlertFloor || snap.Alert > domain.AlertCeil {
		t.Errorf("alert %d escaped its range after concurrent writes", snap.Alert)
	}
}
