// Package queens adapts the N-Queens placement problem to the annealing
// engine.
//
// A configuration holds one queen per column by construction: index i is
// the column and the value is the queen's row. Cost counts unordered
// pairs of queens attacking each other along a row or diagonal (columns
// can never collide).
//
// Neighbor sampling policy (fixed): with probability 1/2 one random
// queen relocates to a different random row within its column, otherwise
// the rows of two distinct random columns swap. Relocation alone can
// reach every configuration from any other, so the swap class only adds
// larger strides on row-permutation boards; the mix is kept constant for
// reproducibility.
package queens

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gitrdm/annealkit/pkg/anneal"
)

// MinBoardSize is the smallest supported board. Boards of 2 and 3 have
// no solution and 1 is trivial.
const MinBoardSize = 4

// State holds the row of the queen in each column.
type State []int

// New validates rows as a board: every entry in [0, len(rows)).
func New(rows []int) (State, error) {
	n := len(rows)
	if n < MinBoardSize {
		return nil, fmt.Errorf("queens: board size %d, want >= %d", n, MinBoardSize)
	}
	for col, row := range rows {
		if row < 0 || row >= n {
			return nil, fmt.Errorf("queens: column %d has row %d, want 0..%d", col, row, n-1)
		}
	}
	s := make(State, n)
	copy(s, rows)
	return s, nil
}

// Random places one queen per column on a uniformly random row.
func Random(n int, rng *rand.Rand) State {
	s := make(State, n)
	for col := range s {
		s[col] = rng.IntN(n)
	}
	return s
}

// Key implements anneal.State.
func (s State) Key() string {
	var b strings.Builder
	for col, row := range s {
		if col > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", row)
	}
	return b.String()
}

// String renders the board with Q for queens and . for empty cells.
func (s State) String() string {
	n := len(s)
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			if s[col] == row {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		if row < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// clone returns an independent copy so moves never mutate in place.
func (s State) clone() State {
	next := make(State, len(s))
	copy(next, s)
	return next
}

// Cost counts the unordered pairs of queens that attack each other:
// same row, or same diagonal (|Δrow| == |Δcol|). Zero exactly when no
// two queens attack.
func Cost(s State) int {
	attacks := 0
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				attacks++
				continue
			}
			dr := s[j] - s[i]
			if dr < 0 {
				dr = -dr
			}
			if dr == j-i {
				attacks++
			}
		}
	}
	return attacks
}

// RelocateMove moves the queen in Col to Row.
type RelocateMove struct {
	Col, Row int
}

func (m RelocateMove) String() string {
	return fmt.Sprintf("move queen in column %d to row %d", m.Col, m.Row)
}

// SwapMove exchanges the rows of columns A and B.
type SwapMove struct {
	A, B int
}

func (m SwapMove) String() string {
	return fmt.Sprintf("swap rows of columns %d and %d", m.A, m.B)
}

// Propose samples one neighbor of s under the package's fixed policy.
// Relocation always changes the state; a swap of two equal rows proposes
// the same configuration again, which the engine accepts at zero delta
// without effect.
func Propose(s State, rng *rand.Rand) anneal.Neighbor {
	n := len(s)
	next := s.clone()
	if rng.IntN(2) == 0 {
		col := rng.IntN(n)
		row := rng.IntN(n - 1)
		if row >= s[col] {
			row++ // skip the current row so the move always changes the state
		}
		next[col] = row
		return anneal.Neighbor{Move: RelocateMove{Col: col, Row: row}, State: next}
	}
	a := rng.IntN(n)
	b := rng.IntN(n - 1)
	if b >= a {
		b++
	}
	next[a], next[b] = next[b], next[a]
	return anneal.Neighbor{Move: SwapMove{A: a, B: b}, State: next}
}

// Problem implements anneal.Problem for an N-Queens board.
type Problem struct {
	n int
}

// NewProblem creates an N-Queens problem. n must be at least
// MinBoardSize.
func NewProblem(n int) (*Problem, error) {
	if n < MinBoardSize {
		return nil, fmt.Errorf("queens: board size %d, want >= %d", n, MinBoardSize)
	}
	return &Problem{n: n}, nil
}

// N returns the board size.
func (p *Problem) N() int { return p.n }

// Name implements anneal.Problem.
func (p *Problem) Name() string { return fmt.Sprintf("%d-queens", p.n) }

// Initial implements anneal.Problem.
func (p *Problem) Initial(rng *rand.Rand) anneal.State {
	return Random(p.n, rng)
}

// Cost implements anneal.Problem.
func (p *Problem) Cost(s anneal.State) int { return Cost(s.(State)) }

// Propose implements anneal.Problem.
func (p *Problem) Propose(s anneal.State, rng *rand.Rand) anneal.Neighbor {
	return Propose(s.(State), rng)
}

// Solved implements anneal.Problem.
func (p *Problem) Solved(s anneal.State) bool { return Cost(s.(State)) == 0 }

// DefaultParams returns the annealing parameters tuned for N-Queens:
// a hot start with fast decay and a short budget per attempt, with
// several retries.
func DefaultParams() anneal.Params {
	return anneal.Params{
		InitialTemp:   100,
		CoolingRate:   0.95,
		MinTemp:       0.1,
		MaxIterations: 1000,
		MaxRestarts:   3,
	}
}
