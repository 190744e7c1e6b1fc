// Package redis publishes engine events to a Redis stream for external
// consumers (dashboards, audit trails). Publication is fire-and-forget: the
// engine never blocks on a slow or absent consumer.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultStream is the stream key events are appended to.
const DefaultStream = "chillmcp:events"

// defaultMaxLen bounds the stream so an unattended server cannot grow it
// without limit.
const defaultMaxLen = 1024

// Sink implements ports.EventSink on a Redis stream.
type Sink struct {
	client *backend.Client
	stream string
	maxLen int64
}

type Option func(*Sink)

// WithStream overrides the stream key.
func WithStream(stream string) Option {
	return func(s *Sink) {
		s.stream = stream
	}
}

// WithMaxLen caps the stream length. Trimming is approximate.
func WithMaxLen(n int64) Option {
	return func(s *Sink) {
		s.maxLen = n
	}
}

// New creates a sink with its own Redis client.
func New(address, password string, db int, opts ...Option) *Sink {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	sink := &Sink{
		client: client,
		stream: DefaultStream,
		maxLen: defaultMaxLen,
	}

	for _, opt := range opts {
		opt(sink)
	}

	return sink
}

// Ping verifies connectivity. The client connects lazily, so callers that
// want to fail fast on a bad address should ping once at startup.
func (s *Sink) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unreachable: %w", err)
	}
	return nil
}

// Publish appends one event of the given kind to the stream. The payload
// fields are stored flat alongside "kind" and an RFC3339 "at" timestamp.
func (s *Sink) Publish(ctx context.Context, kind string, fields map[string]any) error {
	values := make(map[string]any, len(fields)+2)
	values["kind"] = kind
	values["at"] = time.Now().UTC().Format(time.RFC3339Nano)
	for k, v := range fields {
		values[k] = v
	}

	err := s.client.XAdd(ctx, &backend.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Sink) Close() error {
	return s.client.Close()
}
