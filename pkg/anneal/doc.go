// Package anneal implements a generic simulated-annealing engine for
// discrete combinatorial puzzles.
//
// The engine is fully generic over a Problem: a capability set bundling
// initial-state construction, a cost (energy) function, sampled neighbor
// proposal, and a goal predicate. Puzzle-specific behavior lives entirely
// in the adapter packages (see pkg/tiles and pkg/queens); the engine
// contains no puzzle logic.
//
// # Algorithm
//
// Each iteration proposes one neighbor of the current state and computes
// delta = cost(neighbor) - cost(current). The neighbor is accepted
// unconditionally when delta <= 0, and otherwise with the Metropolis
// probability exp(-delta/T). After every iteration the temperature is
// multiplied by the cooling rate and clamped to a small positive floor,
// and the best state seen so far is updated. A run terminates Converged
// as soon as the current state has cost zero, or Exhausted when the
// iteration budget runs out.
//
// The Solver wraps the engine with a restart controller: when a run is
// Exhausted with restart budget remaining, the parameters are perturbed
// (initial temperature raised, cooling slowed) and a fresh run starts
// from a new random state. Restart attempts can also execute
// concurrently; every attempt owns its random generator and trajectory,
// so attempts never share mutable state.
//
// # Reproducibility
//
// All randomness (neighbor sampling and the acceptance coin-flip) is
// drawn from a locally owned generator. Fixing a seed with WithSeed makes
// a solve fully deterministic, including in parallel mode.
//
// # Rendering
//
// The engine has no rendering dependencies. Accepted transitions are
// recorded in a Trajectory whose Steps sequence any presentation layer
// can replay; see internal/tui and internal/gui for the bundled
// renderers.
package anneal
