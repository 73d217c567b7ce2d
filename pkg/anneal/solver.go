package anneal

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/gitrdm/annealkit/internal/parallel"
)

// AttemptReport summarizes one engine run made during a solve.
type AttemptReport struct {
	// ID tags the attempt in logs and reports.
	ID uuid.UUID

	// Round is the restart round the attempt belongs to (0 for the
	// initial parameters, incrementing with each perturbation).
	Round int

	// Params is the parameter set the attempt ran with.
	Params Params

	Status     Status
	BestCost   int
	Iterations int
}

// Solution is the outcome of a full solve, across all restart attempts.
// Solved is false when every attempt was Exhausted; the solution then
// carries the lowest-cost trajectory found, clearly flagged as
// best-effort rather than reported as an error.
type Solution struct {
	Solved     bool
	Cost       int
	Best       State
	Trajectory *Trajectory
	Attempts   []AttemptReport
}

// Solver drives the annealing engine with the restart policy described
// in the package documentation. A Solver is safe to reuse for multiple
// Solve calls; each call runs independent engines.
type Solver struct {
	problem Problem
	cfg     solverConfig
}

// NewSolver creates a solver for the given problem.
func NewSolver(problem Problem, opts ...Option) *Solver {
	cfg := solverConfig{
		logger:   slog.New(slog.DiscardHandler),
		attempts: 1,
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.attempts < 1 {
		cfg.attempts = 1
	}
	return &Solver{problem: problem, cfg: cfg}
}

// Solve runs up to params.MaxRestarts+1 rounds of annealing.
//
// Contract:
//   - The first Converged trajectory found is returned immediately with
//     Solved == true.
//   - When a round is Exhausted and restart budget remains, the next
//     round runs with Perturbed parameters from a fresh random initial
//     state.
//   - When every round is Exhausted, the lowest-cost trajectory across
//     all attempts is returned with Solved == false and a nil error:
//     running out of budget is a normal result.
//   - On context cancellation the best-so-far solution is returned
//     together with ctx.Err().
func (s *Solver) Solve(ctx context.Context, params Params) (*Solution, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	base := s.cfg.seed
	if !s.cfg.seeded {
		base = rand.Uint64()
	}

	var reports []AttemptReport
	var best *RunResult

	cur := params
	for round := 0; round <= params.MaxRestarts; round++ {
		results, runErr := s.runRound(ctx, cur, base, round)

		var converged *RunResult
		for slot, r := range results {
			if r == nil {
				continue
			}
			rep := AttemptReport{
				ID:         uuid.New(),
				Round:      round,
				Params:     cur,
				Status:     r.Status,
				BestCost:   r.BestCost,
				Iterations: r.Iterations,
			}
			reports = append(reports, rep)
			s.cfg.logger.Info("annealing attempt finished",
				"puzzle", s.problem.Name(),
				"attempt", rep.ID,
				"round", round,
				"slot", slot,
				"status", r.Status.String(),
				"cost", r.BestCost,
				"iterations", r.Iterations,
			)
			if converged == nil && r.Status == StatusConverged {
				converged = r
			}
			if best == nil || r.BestCost < best.BestCost {
				best = r
			}
		}

		if converged != nil {
			return &Solution{
				Solved:     true,
				Cost:       0,
				Best:       converged.Best,
				Trajectory: converged.Trajectory,
				Attempts:   reports,
			}, nil
		}
		if runErr != nil {
			if best == nil {
				return nil, runErr
			}
			return s.bestEffort(best, reports), runErr
		}

		cur = cur.Perturbed()
	}

	return s.bestEffort(best, reports), nil
}

func (s *Solver) bestEffort(best *RunResult, reports []AttemptReport) *Solution {
	return &Solution{
		Solved:     false,
		Cost:       best.BestCost,
		Best:       best.Best,
		Trajectory: best.Trajectory,
		Attempts:   reports,
	}
}

// runRound executes the attempts of one restart round. In parallel mode
// each attempt runs on the worker pool with its own generator; slot
// order in the returned slice is stable so seeded solves stay
// deterministic.
func (s *Solver) runRound(ctx context.Context, params Params, base uint64, round int) ([]*RunResult, error) {
	n := s.cfg.attempts
	results := make([]*RunResult, n)

	if n == 1 {
		r, err := NewEngine(s.problem, params, s.attemptRNG(base, round, 0), s.initialFor(round, 0)).Run(ctx)
		results[0] = r
		return results, err
	}

	pool := parallel.NewPool(n)
	defer pool.Close()

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		slot := i
		task := func() {
			defer wg.Done()
			eng := NewEngine(s.problem, params, s.attemptRNG(base, round, slot), s.initialFor(round, slot))
			results[slot], errs[slot] = eng.Run(ctx)
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			errs[slot] = err
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// attemptRNG derives a generator unique to one attempt. The stream mixes
// the round and slot so no two attempts share a sequence.
func (s *Solver) attemptRNG(base uint64, round, slot int) *rand.Rand {
	return rand.New(rand.NewPCG(base, uint64(round)<<16|uint64(slot)))
}

func (s *Solver) initialFor(round, slot int) State {
	if round == 0 && slot == 0 {
		return s.cfg.initial
	}
	return nil
}
