package domain

import (
	"strings"
	"testing"
)

func TestReportForBands(t *testing.T) {
	tests := []struct {
		name       string
		snap       Snapshot
		wantStress string
		wantAlert  string
	}{
		{"all clear", Snapshot{Stress: 10, Alert: 0}, "Low - Feeling good!", "Clear - Coast is clear!"},
		{"moderate edges", Snapshot{Stress: 40, Alert: 1}, "Moderate - Manageable", "Moderate - Some attention detected"},
		{"high edges", Snapshot{Stress: 60, Alert: 3}, "High - Break recommended", "High - Boss is watching closely"},
		{"critical and maxed", Snapshot{Stress: 80, Alert: 5}, "CRITICAL - Need a break ASAP!", "MAXIMUM - Every action has 20s delay!"},
		{"just below bands", Snapshot{Stress: 79, Alert: 4}, "High - Break recommended", "High - Boss is watching closely"},
		{"just below moderate", Snapshot{Stress: 39, Alert: 2}, "Low - Feeling good!", "Moderate - Some attention detected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReportFor(tt.snap)
			if got.StressBand != tt.wantStress {
				t.Errorf("StressBand = %q, want %q", got.StressBand, tt.wantStress)
			}
			if got.AlertBand != tt.wantAlert {
				t.Errorf("AlertBand = %q, want %q", got.AlertBand, tt.wantAlert)
			}
			if got.Snapshot != tt.snap {
				t.Errorf("Snapshot = %+v, want %+v", got.Snapshot, tt.snap)
			}
		})
	}
}

func TestStatusReportSummary(t *testing.T) {
	r := ReportFor(Snapshot{Stress: 62, Alert: 2})
	got := r.Summary()

	want := "Stress Level: 62/100 (High - Break recommended), Boss Alert Level: 2/5 (Moderate - Some attention detected)"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if !strings.Contains(got, "62/100") || !strings.Contains(got, "2/5") {
		t.Errorf("Summary() missing counter readouts: %q", got)
	}
}
