package domain

// BreakResult is the outcome of one dispatched break action. The embedded
// snapshot is the state read back after both mutations settled.
type BreakResult struct {
	Snapshot

	Action  string `json:"action"`
	Summary string `json:"summary"`

	// Remark is the flavor line for this dispatch. When the boss alert rose,
	// it carries the "(Your boss seems to have noticed...)" suffix.
	Remark string `json:"remark"`

	// Reduction is the stress relief actually drawn for this dispatch.
	Reduction int `json:"reduction"`

	// AlertRaised reports whether the boss alert level moved up. A successful
	// probability trial at the ceiling clamps and reports false.
	AlertRaised bool `json:"alert_raised"`
}
