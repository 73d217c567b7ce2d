package anneal

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
)

// Status is the terminal condition of an engine run.
type Status int

const (
	// StatusConverged means the run reached a zero-cost state.
	StatusConverged Status = iota

	// StatusExhausted means the iteration budget ran out before a
	// zero-cost state was reached. Exhaustion is a normal result, not an
	// error.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Acceptance returns the Metropolis acceptance probability for a
// proposed cost increase of delta at the given temperature: 1 when
// delta <= 0, exp(-delta/temp) otherwise. It is exported so the
// criterion can be tested in isolation; temp must be positive.
func Acceptance(delta int, temp float64) float64 {
	if delta <= 0 {
		return 1
	}
	return math.Exp(-float64(delta) / temp)
}

// RunResult reports the outcome of a single engine run.
type RunResult struct {
	Status     Status
	Best       State
	BestCost   int
	Iterations int
	FinalTemp  float64
	Trajectory *Trajectory
}

// Engine executes one annealing run over a Problem. An Engine is
// single-use and single-threaded: each iteration completes fully before
// the next begins, and concurrent runs must each use their own Engine.
type Engine struct {
	problem Problem
	params  Params
	rng     *rand.Rand

	current  State
	curCost  int
	best     State
	bestCost int

	temp float64
	iter int
	traj *Trajectory
}

// NewEngine prepares a run starting from initial, or from a fresh
// configuration drawn via problem.Initial when initial is nil. The
// params are assumed validated; Solver validates before constructing
// engines.
func NewEngine(problem Problem, params Params, rng *rand.Rand, initial State) *Engine {
	if initial == nil {
		initial = problem.Initial(rng)
	}
	cost := problem.Cost(initial)
	e := &Engine{
		problem:  problem,
		params:   params,
		rng:      rng,
		current:  initial,
		curCost:  cost,
		best:     initial,
		bestCost: cost,
		temp:     params.InitialTemp,
	}
	e.traj = newTrajectory(Step{State: initial, Cost: cost, Temperature: e.temp})
	return e
}

// Run drives the annealing loop to a terminal state.
//
// Contract:
//   - Returns StatusConverged with the solving trajectory as soon as the
//     current state has cost zero, including when the initial state is
//     already solved (trajectory length 1).
//   - Returns StatusExhausted with the best state seen and its cost when
//     the iteration budget runs out.
//   - Cancellation is cooperative: ctx is checked between iterations,
//     never mid-iteration. On cancellation the best-so-far result is
//     returned together with ctx.Err().
func (e *Engine) Run(ctx context.Context) (*RunResult, error) {
	floor := e.params.floor()
	for e.curCost != 0 && e.iter < e.params.MaxIterations {
		select {
		case <-ctx.Done():
			return e.result(StatusExhausted), ctx.Err()
		default:
		}

		nb := e.problem.Propose(e.current, e.rng)
		nbCost := e.problem.Cost(nb.State)
		delta := nbCost - e.curCost

		if delta <= 0 || e.rng.Float64() < Acceptance(delta, e.temp) {
			e.current = nb.State
			e.curCost = nbCost
			e.traj.append(Step{
				State:       nb.State,
				Cost:        nbCost,
				Move:        nb.Move,
				Iteration:   e.iter + 1,
				Temperature: e.temp,
			})
		}

		e.temp *= e.params.CoolingRate
		if e.temp < floor {
			e.temp = floor
		}
		e.iter++

		if e.curCost < e.bestCost {
			e.best = e.current
			e.bestCost = e.curCost
		}
	}

	if e.curCost == 0 {
		return e.result(StatusConverged), nil
	}
	return e.result(StatusExhausted), nil
}

func (e *Engine) result(status Status) *RunResult {
	return &RunResult{
		Status:     status,
		Best:       e.best,
		BestCost:   e.bestCost,
		Iterations: e.iter,
		FinalTemp:  e.temp,
		Trajectory: e.traj,
	}
}
