package anneal

import "iter"

// Step is one accepted transition in a run: the state entered, its cost,
// the move that produced it, and the engine counters at acceptance time.
// The first step of every trajectory is the initial state with a nil
// Move.
type Step struct {
	State       State
	Cost        int
	Move        Move
	Iteration   int
	Temperature float64
}

// Trajectory is the ordered record of accepted states from the initial
// configuration to the terminal one. It is built by the engine and
// read-only once the run ends; renderers own replay timing and consume
// it through Steps or the indexed accessors.
type Trajectory struct {
	steps []Step
}

func newTrajectory(initial Step) *Trajectory {
	return &Trajectory{steps: []Step{initial}}
}

func (t *Trajectory) append(s Step) {
	t.steps = append(t.steps, s)
}

// Len returns the number of recorded steps, including the initial state.
func (t *Trajectory) Len() int { return len(t.steps) }

// At returns the i-th step. It panics when i is out of range, matching
// slice indexing semantics.
func (t *Trajectory) At(i int) Step { return t.steps[i] }

// Initial returns the first recorded step.
func (t *Trajectory) Initial() Step { return t.steps[0] }

// Final returns the last recorded step.
func (t *Trajectory) Final() Step { return t.steps[len(t.steps)-1] }

// Steps returns a lazy, finite, restartable sequence over the recorded
// steps in acceptance order. Each call to the returned sequence iterates
// from the beginning.
func (t *Trajectory) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, s := range t.steps {
			if !yield(s) {
				return
			}
		}
	}
}
