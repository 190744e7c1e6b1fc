package domain

import (
	"context"
	"time"
)

// EventType defines the category of an operational event.
type EventType string

const (
	EventInit         EventType = "init"
	EventDispatch     EventType = "dispatch"
	EventPenaltyEnter EventType = "penalty_enter"
	EventPenaltyLeave EventType = "penalty_leave"
	EventDecayTick    EventType = "decay_tick"
)

// InitEvent is emitted once, when the engine starts its drift processes.
type InitEvent struct {
	Probability int           `json:"boss_alertness"`
	Cooldown    time.Duration `json:"cooldown"`
	Stress      int           `json:"stress_level"`
	Alert       int           `json:"boss_alert_level"`
}

// DispatchEvent is emitted after each completed break dispatch.
type DispatchEvent struct {
	ID          string        `json:"id"`
	Action      string        `json:"action"`
	Reduction   int           `json:"reduction"`
	AlertRaised bool          `json:"alert_raised"`
	Stress      int           `json:"stress_level"`
	Alert       int           `json:"boss_alert_level"`
	Elapsed     time.Duration `json:"elapsed"`
}

// PenaltyEvent brackets the fixed delay served while the boss alert is maxed.
// The ID matches the DispatchEvent of the call that paid the penalty.
type PenaltyEvent struct {
	ID     string        `json:"id"`
	Action string        `json:"action"`
	Alert  int           `json:"boss_alert_level"`
	Delay  time.Duration `json:"delay"`
}

// TickEvent is emitted by a background drift loop when its counter moves.
// Ticks absorbed by the bounds are silent.
type TickEvent struct {
	Counter string `json:"counter"`
	Value   int    `json:"value"`
}

// Hooks defines callbacks for engine observability. All fields are optional.
// Callbacks run synchronously on the emitting goroutine and are observational
// only: they must not mutate engine state.
type Hooks struct {
	OnInit         func(context.Context, *InitEvent)
	OnDispatch     func(context.Context, *DispatchEvent)
	OnPenaltyEnter func(context.Context, *PenaltyEvent)
	OnPenaltyLeave func(context.Context, *PenaltyEvent)
	OnDecayTick    func(context.Context, *TickEvent)
}
