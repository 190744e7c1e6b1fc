package ports

import "context"

// EventSink receives operational events for external consumers (dashboards,
// audit trails). Implementations must be safe for concurrent use.
//
// Publishing is fire-and-forget from the engine's point of view: a sink error
// never blocks or fails the operation that produced the event.
type EventSink interface {
	// Publish appends one event of the given kind with its payload fields.
	Publish(ctx context.Context, kind string, fields map[string]any) error

	// Close releases any resources held by the sink.
	Close() error
}
