package ports

import (
	"context"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// BreakEngine is the driving port for the break state machine. Front ends
// (MCP server, interactive CLI, HTTP) depend on this interface rather than on
// the concrete engine.
type BreakEngine interface {
	// Dispatch executes the named break action: it serves any boss penalty
	// first, then applies stress relief and the boss-alert trial, and returns
	// the resulting state. Unknown action names yield an error wrapping
	// domain.ErrUnknownAction.
	Dispatch(ctx context.Context, action string) (domain.BreakResult, error)

	// Status reports the current counters without mutating them.
	Status(ctx context.Context) domain.StatusReport

	// Catalog returns the break actions this engine dispatches.
	Catalog() domain.Catalog
}
