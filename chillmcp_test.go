package chillmcp_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillmcp/chillmcp"
	"github.com/chillmcp/chillmcp/pkg/domain"
	"github.com/chillmcp/chillmcp/pkg/ports"
)

// The facade must satisfy the driving port used by all front ends.
var _ ports.BreakEngine = (*chillmcp.Engine)(nil)

func TestNewRejectsBadTuning(t *testing.T) {
	_, err := chillmcp.New(chillmcp.WithBossAlertness(150))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = chillmcp.New(chillmcp.WithBossAlertnessCooldown(-time.Minute))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestNewDefaultsToBuiltinCatalog(t *testing.T) {
	eng, err := chillmcp.New()
	require.NoError(t, err)
	assert.Len(t, eng.Catalog(), 8)
	assert.Contains(t, eng.Catalog().Names(), "watch_netflix")
}

func TestDispatchThroughFacade(t *testing.T) {
	eng, err := chillmcp.New(chillmcp.WithBossAlertness(0))
	require.NoError(t, err)

	res, err := eng.Dispatch(context.Background(), "take_a_break")
	require.NoError(t, err)
	assert.Equal(t, "take_a_break", res.Action)
	assert.GreaterOrEqual(t, res.Reduction, 10)
	assert.LessOrEqual(t, res.Reduction, 30)
	assert.False(t, res.AlertRaised)
}

func TestCustomCatalogThroughFacade(t *testing.T) {
	cat := domain.Catalog{
		{Name: "stretch", Summary: "Stretched at the desk", MinRelief: 5, MaxRelief: 5},
	}
	eng, err := chillmcp.New(chillmcp.WithBossAlertness(0), chillmcp.WithCatalog(cat))
	require.NoError(t, err)

	res, err := eng.Dispatch(context.Background(), "stretch")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Reduction)
	assert.Equal(t, 45, res.Stress)

	_, err = eng.Dispatch(context.Background(), "watch_netflix")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestVersionIsEmbedded(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(chillmcp.Version))
}
