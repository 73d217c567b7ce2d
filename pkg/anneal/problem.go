package anneal

import "math/rand/v2"

// State is an immutable puzzle configuration. Implementations must be
// value-like: transforming a state yields a new State, never an in-place
// mutation.
type State interface {
	// Key returns a canonical encoding of the configuration. Two states
	// are equal exactly when their keys are equal, which makes Key
	// suitable for visited-state bookkeeping in map keys.
	Key() string
}

// Move is an opaque descriptor of a single legal transition. A Move is
// sufficient, together with the state it was proposed from, to
// regenerate the neighbor it produced. Moves are retained by the
// Trajectory so renderers can narrate a replay.
type Move interface {
	String() string
}

// Neighbor pairs a proposed successor state with the move that
// produced it.
type Neighbor struct {
	Move  Move
	State State
}

// Problem is the capability set a puzzle provides to the engine:
// initial-state construction, cost evaluation, neighbor proposal, and
// the goal predicate.
//
// Contract:
//   - Cost is pure and non-negative; Cost(s) == 0 exactly when
//     Solved(s).
//   - Propose returns one neighbor reachable by a single legal move,
//     sampled using only the supplied generator. The sampling policy
//     must be fixed per problem and documented by the implementation,
//     since it determines which states are reachable.
//   - Initial draws a fresh starting configuration from rng. It must
//     always return a valid state; invalid external input is rejected by
//     the puzzle package's constructors before a Problem exists.
type Problem interface {
	// Name identifies the puzzle in logs and reports.
	Name() string

	// Initial returns a starting configuration.
	Initial(rng *rand.Rand) State

	// Cost maps a state to its energy. Zero means solved.
	Cost(s State) int

	// Propose samples one neighbor of s.
	Propose(s State, rng *rand.Rand) Neighbor

	// Solved reports whether s is a goal state.
	Solved(s State) bool
}
