package anneal

import (
	"log/slog"
)

// Option configures a Solver. Use helpers like WithSeed, WithLogger,
// WithInitialState, and WithParallelAttempts.
type Option func(*solverConfig)

type solverConfig struct {
	logger   *slog.Logger
	seed     uint64
	seeded   bool
	attempts int
	initial  State
}

// WithSeed fixes the base random seed for the solve. Every attempt
// derives its own generator from the base seed and its attempt index, so
// a seeded solve is fully deterministic, in sequential and parallel mode
// alike. Without this option a fresh seed is drawn per solve.
func WithSeed(seed uint64) Option {
	return func(c *solverConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithLogger routes the solver's structured progress logs (attempt
// start/end, status, cost) to l. Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *solverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialState starts the first attempt from s instead of a random
// configuration. Restart attempts always begin from fresh random states.
// The state must come from the same puzzle package as the Problem; it is
// validated by that package's constructor, not here.
func WithInitialState(s State) Option {
	return func(c *solverConfig) { c.initial = s }
}

// WithParallelAttempts races n independent attempts per restart round,
// each with its own generator and trajectory. Values <= 1 select
// sequential mode. The restart budget counts rounds, not individual
// attempts.
func WithParallelAttempts(n int) Option {
	return func(c *solverConfig) { c.attempts = n }
}
