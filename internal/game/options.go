package game

import (
	"github.com/rs/zerolog"

	"github.com/lox/draftforbots/internal/randutil"
)

// MatchOption configures a match during creation.
type MatchOption func(*matchConfig)

// matchConfig holds all configuration for creating a match.
type matchConfig struct {
	draw     DrawFunc
	narrator Narrator
	rate     ExchangeRate
	logger   zerolog.Logger
	parallel bool
}

// WithSeed derives the match's draw primitive from a seed. Equal seeds
// replay identical matches against identical seats and catalog.
func WithSeed(seed int64) MatchOption {
	return func(c *matchConfig) {
		c.draw = randutil.NewDraw(seed)
	}
}

// WithDraw injects the raw draw primitive directly, overriding any seed.
// Tests use this to script exact shuffles.
func WithDraw(draw DrawFunc) MatchOption {
	return func(c *matchConfig) {
		c.draw = draw
	}
}

// WithNarrator attaches a narration sink for play-by-play notices.
func WithNarrator(n Narrator) MatchOption {
	return func(c *matchConfig) {
		c.narrator = n
	}
}

// WithExchangeRate overrides neighbor trade pricing.
func WithExchangeRate(rate ExchangeRate) MatchOption {
	return func(c *matchConfig) {
		c.rate = rate
	}
}

// WithLogger attaches a structured logger for engine diagnostics.
func WithLogger(logger zerolog.Logger) MatchOption {
	return func(c *matchConfig) {
		c.logger = logger
	}
}

// WithParallelDecisions collects turn decisions concurrently. The turn
// still waits for every decision before resolving any of them.
func WithParallelDecisions() MatchOption {
	return func(c *matchConfig) {
		c.parallel = true
	}
}
