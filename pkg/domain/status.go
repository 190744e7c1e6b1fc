package domain

import "fmt"

// StatusName is the reserved read-only query. It never appears in a Catalog;
// front ends route it to the status accessor instead of Dispatch.
const StatusName = "get_status"

// StatusReport is a snapshot graded into narrative bands.
type StatusReport struct {
	Snapshot
	StressBand string `json:"stress_band"`
	AlertBand  string `json:"alert_band"`
}

// ReportFor grades a snapshot.
func ReportFor(s Snapshot) StatusReport {
	return StatusReport{
		Snapshot:   s,
		StressBand: stressBand(s.Stress),
		AlertBand:  alertBand(s.Alert),
	}
}

// Summary renders the one-line assessment used by the status front ends.
func (r StatusReport) Summary() string {
	return fmt.Sprintf("Stress Level: %d/100 (%s), Boss Alert Level: %d/5 (%s)",
		r.Stress, r.StressBand, r.Alert, r.AlertBand)
}

func stressBand(v int) string {
	switch {
	case v >= 80:
		return "CRITICAL - Need a break ASAP!"
	case v >= 60:
		return "High - Break recommended"
	case v >= 40:
		return "Moderate - Manageable"
	default:
		return "Low - Feeling good!"
	}
}

func alertBand(v int) string {
	switch {
	case v >= AlertCeil:
		return "MAXIMUM - Every action has 20s delay!"
	case v >= 3:
		return "High - Boss is watching closely"
	case v >= 1:
		return "Moderate - Some attention detected"
	default:
		return "Clear - Coast is clear!"
	}
}
