package engine

import (
	"fmt"
	"time"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// Defaults applied by DefaultConfig.
const (
	// DefaultAlertProbability is the stock chance (in percent) that a break
	// raises the boss alert level.
	DefaultAlertProbability = 50

	// DefaultAlertCooldown is the stock interval for the boss alert level to
	// drop by one point.
	DefaultAlertCooldown = 300 * time.Second
)

// Fixed cadences of the state machine. These are part of the behaviour, not
// tuning knobs: stress grows by one point per interval, and a dispatch at the
// alert ceiling stalls for the full penalty delay.
const (
	stressGrowthInterval = 60 * time.Second
	bossPenaltyDelay     = 20 * time.Second
)

// Config carries the tunable knobs of the break engine.
type Config struct {
	// AlertProbability is the percent chance (0-100) that a dispatched break
	// raises the boss alert level by one.
	AlertProbability int

	// AlertCooldown is how long the boss alert level takes to decay by one
	// point. Must be positive.
	AlertCooldown time.Duration
}

// DefaultConfig returns the stock tuning: a coin-flip alert probability and a
// five minute cooldown.
func DefaultConfig() Config {
	return Config{
		AlertProbability: DefaultAlertProbability,
		AlertCooldown:    DefaultAlertCooldown,
	}
}

// Validate reports whether the configuration is usable. Errors wrap
// domain.ErrInvalidConfig so callers can treat any tuning problem uniformly.
func (c Config) Validate() error {
	if c.AlertProbability < 0 || c.AlertProbability > 100 {
		return fmt.Errorf("%w: boss alertness must be between 0 and 100, got %d", domain.ErrInvalidConfig, c.AlertProbability)
	}
	if c.AlertCooldown <= 0 {
		return fmt.Errorf("%w: boss alertness cooldown must be positive, got %s", domain.ErrInvalidConfig, c.AlertCooldown)
	}
	return nil
}
