package anneal_test

import (
	"context"
	"testing"

	"github.com/gitrdm/annealkit/pkg/anneal"
	"github.com/gitrdm/annealkit/pkg/queens"
	"github.com/gitrdm/annealkit/pkg/tiles"
)

// Solved tiles start: the solver must converge without a single
// iteration and hand back a one-step trajectory.
func TestScenario_TilesGoalStartConvergesImmediately(t *testing.T) {
	s := anneal.NewSolver(tiles.NewProblem(),
		anneal.WithSeed(1),
		anneal.WithInitialState(tiles.Goal()),
	)
	sol, err := s.Solve(context.Background(), tiles.DefaultParams())
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !sol.Solved {
		t.Fatal("goal start not reported solved")
	}
	if sol.Trajectory.Len() != 1 {
		t.Errorf("trajectory length = %d, want 1", sol.Trajectory.Len())
	}
	if sol.Attempts[0].Iterations != 0 {
		t.Errorf("iterations = %d, want 0", sol.Attempts[0].Iterations)
	}
}

// One move from the goal, cold schedule, fixed seed: only downhill
// proposals get accepted, so the solving slide lands within 50
// iterations.
func TestScenario_TilesOneMoveFromGoal(t *testing.T) {
	start := tiles.Goal().Neighbors()[0].State.(tiles.State)
	if tiles.Cost(start) != 1 {
		t.Fatalf("setup: start cost = %d, want 1", tiles.Cost(start))
	}

	s := anneal.NewSolver(tiles.NewProblem(),
		anneal.WithSeed(1),
		anneal.WithInitialState(start),
	)
	sol, err := s.Solve(context.Background(), anneal.Params{
		InitialTemp:   0.05,
		CoolingRate:   0.9,
		MaxIterations: 50,
	})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !sol.Solved {
		t.Fatalf("did not converge within 50 iterations (cost %d)", sol.Cost)
	}
	if sol.Attempts[0].Iterations > 50 {
		t.Errorf("iterations = %d, want <= 50", sol.Attempts[0].Iterations)
	}
	final := sol.Trajectory.Final().State.(tiles.State)
	if final != tiles.Goal() {
		t.Errorf("final state is not the goal:\n%s", final)
	}
}

// 4-Queens with a fixed seed converges within the default schedule plus
// restarts (documented bound: at most 10 attempts of 5000 iterations).
func TestScenario_FourQueensConverges(t *testing.T) {
	p, err := queens.NewProblem(4)
	if err != nil {
		t.Fatalf("NewProblem error: %v", err)
	}
	s := anneal.NewSolver(p, anneal.WithSeed(7))
	sol, err := s.Solve(context.Background(), anneal.Params{
		InitialTemp:   100,
		CoolingRate:   0.95,
		MinTemp:       0.1,
		MaxIterations: 5000,
		MaxRestarts:   9,
	})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !sol.Solved {
		t.Fatalf("4-queens did not converge (cost %d after %d attempts)", sol.Cost, len(sol.Attempts))
	}

	board := sol.Best.(queens.State)
	if len(board) != 4 {
		t.Fatalf("board size = %d, want 4", len(board))
	}
	rows := map[int]bool{}
	for _, r := range board {
		rows[r] = true
	}
	if len(rows) != 4 {
		t.Errorf("rows not distinct: %v", board)
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			dr := board[j] - board[i]
			if dr < 0 {
				dr = -dr
			}
			if dr == j-i {
				t.Errorf("columns %d and %d share a diagonal: %v", i, j, board)
			}
		}
	}
}

// Zero iteration budget on a non-goal start: immediately Exhausted with
// the initial state as best.
func TestScenario_ZeroBudgetReportsInitialAsBest(t *testing.T) {
	start := tiles.Goal().Neighbors()[0].State.(tiles.State)
	s := anneal.NewSolver(tiles.NewProblem(),
		anneal.WithSeed(1),
		anneal.WithInitialState(start),
	)
	sol, err := s.Solve(context.Background(), anneal.Params{
		InitialTemp:   1,
		CoolingRate:   0.995,
		MaxIterations: 0,
	})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if sol.Solved {
		t.Fatal("zero-budget run reported solved")
	}
	if sol.Attempts[0].Status != anneal.StatusExhausted {
		t.Errorf("status = %v, want %v", sol.Attempts[0].Status, anneal.StatusExhausted)
	}
	if sol.Best.(tiles.State) != start {
		t.Errorf("best = %v, want the initial state", sol.Best)
	}
	if sol.Cost != 1 {
		t.Errorf("cost = %d, want 1", sol.Cost)
	}
	if sol.Trajectory.Len() != 1 {
		t.Errorf("trajectory length = %d, want 1", sol.Trajectory.Len())
	}
}
