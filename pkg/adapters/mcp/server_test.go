package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

type stubEngine struct {
	result     domain.BreakResult
	err        error
	report     domain.StatusReport
	dispatched []string
}

func (s *stubEngine) Dispatch(_ context.Context, action string) (domain.BreakResult, error) {
	s.dispatched = append(s.dispatched, action)
	return s.result, s.err
}

func (s *stubEngine) Status(context.Context) domain.StatusReport { return s.report }

func (s *stubEngine) Catalog() domain.Catalog { return domain.DefaultCatalog() }

func TestBreakHandlerMapsResult(t *testing.T) {
	eng := &stubEngine{
		result: domain.BreakResult{
			Snapshot:    domain.Snapshot{Stress: 23, Alert: 2},
			Action:      "watch_netflix",
			Summary:     "Watched Netflix for a while",
			Remark:      "Binge mode activated!",
			Reduction:   27,
			AlertRaised: true,
		},
	}
	srv := NewServer(eng)

	resp, err := srv.breakHandler("watch_netflix")(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"watch_netflix"}, eng.dispatched)
	assert.Equal(t, "Watched Netflix for a while", resp.Summary)
	assert.Equal(t, "Binge mode activated!", resp.Remark)
	assert.Equal(t, 23, resp.StressLevel)
	assert.Equal(t, 2, resp.BossAlertLevel)
}

func TestBreakHandlerWrapsDispatchError(t *testing.T) {
	eng := &stubEngine{err: domain.ErrUnknownAction}
	srv := NewServer(eng)

	_, err := srv.breakHandler("watch_netflix")(context.Background(), mcp.CallToolRequest{}, nil)
	require.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.ErrorContains(t, err, "dispatch failed")
}

func TestStatusHandler(t *testing.T) {
	eng := &stubEngine{
		report: domain.ReportFor(domain.Snapshot{Stress: 85, Alert: 4}),
	}
	srv := NewServer(eng)

	resp, err := srv.handleStatus(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 85, resp.StressLevel)
	assert.Equal(t, 4, resp.BossAlertLevel)
	assert.Contains(t, resp.Summary, "CRITICAL - Need a break ASAP!")
	assert.Contains(t, resp.Summary, "High - Boss is watching closely")
}
