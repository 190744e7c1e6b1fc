package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillmcp/chillmcp"
	"github.com/chillmcp/chillmcp/internal/metrics"
	"github.com/chillmcp/chillmcp/pkg/ports"
)

// failingSink counts Publish calls and fails every one of them.
type failingSink struct {
	calls int
	err   error
}

var _ ports.EventSink = (*failingSink)(nil)

func (s *failingSink) Publish(context.Context, string, map[string]any) error {
	s.calls++
	return s.err
}

func (s *failingSink) Close() error { return nil }

func newHooksEngine(t *testing.T, logBuf *bytes.Buffer, sink ports.EventSink) *chillmcp.Engine {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(logBuf, nil))
	engine, err := chillmcp.New(
		chillmcp.WithBossAlertness(0),
		chillmcp.WithHooks(newHooks(logger, metrics.NewCollector(), sink)),
	)
	require.NoError(t, err)
	return engine
}

func TestHooksSurviveSinkFailure(t *testing.T) {
	var logBuf bytes.Buffer
	sink := &failingSink{err: errors.New("stream down")}
	engine := newHooksEngine(t, &logBuf, sink)

	result, err := engine.Dispatch(context.Background(), "show_meme")

	// The dispatch must succeed even though every publish fails.
	require.NoError(t, err)
	assert.Equal(t, "show_meme", result.Action)
	assert.Equal(t, 1, sink.calls)
	assert.Contains(t, logBuf.String(), "event publish failed")
	assert.Contains(t, logBuf.String(), "stream down")
}

func TestHooksSkipPublishWithoutSink(t *testing.T) {
	var logBuf bytes.Buffer
	engine := newHooksEngine(t, &logBuf, nil)

	_, err := engine.Dispatch(context.Background(), "take_a_break")

	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "break dispatched")
	assert.NotContains(t, logBuf.String(), "event publish failed")
}
