package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// ContentRenderer transforms markdown before it is written to the terminal.
// Keeping it a plain function decouples the session loop from glamour.
type ContentRenderer func(string) (string, error)

// NewRenderer returns a ContentRenderer backed by glamour.
func NewRenderer() ContentRenderer {
	// Automatically detect light/dark background.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// StatusMarkdown renders a status report as markdown for terminal display.
func StatusMarkdown(report domain.StatusReport) string {
	return fmt.Sprintf(
		"# Agent Status Report\n\n- **Stress Level:** %d/100 (%s)\n- **Boss Alert Level:** %d/5 (%s)\n",
		report.Stress, report.StressBand,
		report.Alert, report.AlertBand,
	)
}
