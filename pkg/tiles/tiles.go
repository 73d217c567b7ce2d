// Package tiles adapts the 8-tile sliding puzzle (3×3 grid) to the
// annealing engine.
//
// A configuration is stored in row-major order with 0 marking the blank
// cell. The goal places value v at index v-1 with the blank last. Moves
// slide one of the tiles orthogonally adjacent to the blank into the
// blank cell; depending on where the blank sits there are 2 (corner),
// 3 (edge), or 4 (center) legal moves, and every move is its own
// inverse's counterpart, so neighbor generation is symmetric.
package tiles

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gitrdm/annealkit/pkg/anneal"
)

const (
	gridSize = 3
	boardLen = gridSize * gridSize

	// Blank marks the empty cell.
	Blank = 0
)

// Move is the direction the blank travels when a neighboring tile
// slides into it.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// delta returns the row/column displacement of the blank for the move.
func (m Move) delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// State is a 3×3 board in row-major order. The blank position is always
// derived from the cells, never cached, so the grid is the single source
// of truth. State is a value type: applying a move returns a new State.
type State [boardLen]int

// Goal returns the solved configuration 1..8 with the blank last.
func Goal() State {
	return State{1, 2, 3, 4, 5, 6, 7, 8, Blank}
}

// New validates cells as a board configuration: exactly one blank and
// each of 1..8 exactly once. Invalid input fails here, at construction
// time, so the engine never sees a malformed state.
func New(cells [boardLen]int) (State, error) {
	var seen [boardLen]bool
	for i, v := range cells {
		if v < 0 || v >= boardLen {
			return State{}, fmt.Errorf("tiles: cell %d holds %d, want 0..8", i, v)
		}
		if seen[v] {
			return State{}, fmt.Errorf("tiles: value %d appears more than once", v)
		}
		seen[v] = true
	}
	return State(cells), nil
}

// Key implements anneal.State.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(boardLen)
	for _, v := range s {
		b.WriteByte('0' + byte(v))
	}
	return b.String()
}

// String renders the board as three rows with the blank shown as "_".
func (s State) String() string {
	var b strings.Builder
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			v := s[r*gridSize+c]
			if v == Blank {
				b.WriteByte('_')
			} else {
				b.WriteByte('0' + byte(v))
			}
		}
		if r < gridSize-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s State) blankIndex() int {
	for i, v := range s {
		if v == Blank {
			return i
		}
	}
	return -1
}

// apply slides the tile in the move direction into the blank, returning
// the new state and whether the move was legal from s.
func (s State) apply(m Move) (State, bool) {
	bi := s.blankIndex()
	dr, dc := m.delta()
	r, c := bi/gridSize+dr, bi%gridSize+dc
	if r < 0 || r >= gridSize || c < 0 || c >= gridSize {
		return s, false
	}
	ni := r*gridSize + c
	next := s
	next[bi], next[ni] = next[ni], next[bi]
	return next, true
}

// Neighbors enumerates every state reachable from s by one slide,
// together with the move that produces it. The result has 2, 3, or 4
// entries depending on the blank position.
func (s State) Neighbors() []anneal.Neighbor {
	out := make([]anneal.Neighbor, 0, 4)
	for _, m := range []Move{Up, Down, Left, Right} {
		if next, ok := s.apply(m); ok {
			out = append(out, anneal.Neighbor{Move: m, State: next})
		}
	}
	return out
}

// Cost is the sum over the eight numbered tiles of the Manhattan
// distance from each tile's cell to its goal cell. The blank does not
// contribute. Cost is zero exactly at the goal configuration.
func Cost(s State) int {
	sum := 0
	for i, v := range s {
		if v == Blank {
			continue
		}
		goal := v - 1
		dr := i/gridSize - goal/gridSize
		dc := i%gridSize - goal%gridSize
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}

// Shuffle walks the given number of random legal moves away from the
// goal, so the result is always solvable. steps of zero returns the goal
// itself.
func Shuffle(steps int, rng *rand.Rand) State {
	s := Goal()
	for i := 0; i < steps; i++ {
		nbs := s.Neighbors()
		s = nbs[rng.IntN(len(nbs))].State.(State)
	}
	return s
}

// DefaultShuffleSteps is the random-walk length used when the problem
// draws its own initial states.
const DefaultShuffleSteps = 40

// Problem implements anneal.Problem for the 8-tile puzzle.
type Problem struct {
	// ShuffleSteps is the random-walk length for Initial. Zero selects
	// DefaultShuffleSteps.
	ShuffleSteps int
}

// NewProblem returns a tiles problem drawing solvable initial states by
// random walk from the goal.
func NewProblem() *Problem {
	return &Problem{ShuffleSteps: DefaultShuffleSteps}
}

// Name implements anneal.Problem.
func (p *Problem) Name() string { return "8-tiles" }

// Initial implements anneal.Problem.
func (p *Problem) Initial(rng *rand.Rand) anneal.State {
	steps := p.ShuffleSteps
	if steps <= 0 {
		steps = DefaultShuffleSteps
	}
	return Shuffle(steps, rng)
}

// Cost implements anneal.Problem.
func (p *Problem) Cost(s anneal.State) int { return Cost(s.(State)) }

// Propose implements anneal.Problem by sampling uniformly from the full
// neighbor set.
func (p *Problem) Propose(s anneal.State, rng *rand.Rand) anneal.Neighbor {
	nbs := s.(State).Neighbors()
	return nbs[rng.IntN(len(nbs))]
}

// Solved implements anneal.Problem.
func (p *Problem) Solved(s anneal.State) bool { return s.(State) == Goal() }

// DefaultParams returns the annealing parameters tuned for the 3×3
// board: a cool start with slow decay and a generous iteration budget,
// plus one retry at a hotter, slower schedule.
func DefaultParams() anneal.Params {
	return anneal.Params{
		InitialTemp:   1.0,
		CoolingRate:   0.995,
		MinTemp:       0.01,
		MaxIterations: 50000,
		MaxRestarts:   1,
	}
}
