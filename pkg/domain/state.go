package domain

// Counter bounds. Every write clamps into these ranges; no code path may
// store an out-of-range value.
const (
	StressFloor = 0
	StressCeil  = 100
	AlertFloor  = 0
	AlertCeil   = 5
)

// Initial counter values for a fresh engine.
const (
	InitialStress = 50
	InitialAlert  = 0
)

// Names of the drifting counters, as reported in TickEvent.
const (
	CounterStress    = "stress"
	CounterBossAlert = "boss_alert"
)

// ClampStress forces v into the valid stress range.
func ClampStress(v int) int {
	if v < StressFloor {
		return StressFloor
	}
	if v > StressCeil {
		return StressCeil
	}
	return v
}

// ClampAlert forces v into the valid boss alert range.
func ClampAlert(v int) int {
	if v < AlertFloor {
		return AlertFloor
	}
	if v > AlertCeil {
		return AlertCeil
	}
	return v
}

// Snapshot is a consistent read of both counters taken under a single lock.
type Snapshot struct {
	Stress int `json:"stress_level"`
	Alert  int `json:"boss_alert_level"`
}
