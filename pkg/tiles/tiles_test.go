package tiles

import (
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cells   [9]int
		wantErr bool
	}{
		{"goal", [9]int{1, 2, 3, 4, 5, 6, 7, 8, 0}, false},
		{"scrambled", [9]int{5, 1, 3, 4, 2, 8, 6, 7, 0}, false},
		{"duplicate value", [9]int{1, 1, 3, 4, 5, 6, 7, 8, 0}, true},
		{"two blanks", [9]int{1, 2, 3, 4, 5, 6, 7, 0, 0}, true},
		{"value out of range", [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, true},
		{"negative value", [9]int{-1, 2, 3, 4, 5, 6, 7, 8, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cells)
			if tt.wantErr && err == nil {
				t.Fatalf("New(%v) = nil error, want validation failure", tt.cells)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("New(%v) error: %v", tt.cells, err)
			}
		})
	}
}

func TestCost_ZeroOnlyAtGoal(t *testing.T) {
	if got := Cost(Goal()); got != 0 {
		t.Fatalf("Cost(Goal()) = %d, want 0", got)
	}

	// Random walks never produce a zero-cost state other than the goal.
	rng := testRNG(4)
	for i := 0; i < 500; i++ {
		s := Shuffle(30, rng)
		if Cost(s) == 0 && s != Goal() {
			t.Fatalf("non-goal state has zero cost:\n%s", s)
		}
		if s == Goal() && Cost(s) != 0 {
			t.Fatalf("goal state has cost %d", Cost(s))
		}
	}
}

func TestCost_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		cells [9]int
		want  int
	}{
		{"goal", [9]int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 0},
		{"one slide away", [9]int{1, 2, 3, 4, 5, 6, 7, 0, 8}, 1},
		{"swap of adjacent tiles", [9]int{2, 1, 3, 4, 5, 6, 7, 8, 0}, 2},
		{"reference start", [9]int{5, 1, 3, 4, 2, 8, 6, 7, 0}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cells)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if got := Cost(s); got != tt.want {
				t.Errorf("Cost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNeighbors_CountDependsOnBlankPosition(t *testing.T) {
	tests := []struct {
		name  string
		cells [9]int
		want  int
	}{
		{"blank in corner", [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, 2},
		{"blank on edge", [9]int{1, 0, 2, 3, 4, 5, 6, 7, 8}, 3},
		{"blank in center", [9]int{1, 2, 3, 4, 0, 5, 6, 7, 8}, 4},
		{"blank in last corner", [9]int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cells)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if got := len(s.Neighbors()); got != tt.want {
				t.Errorf("len(Neighbors) = %d, want %d", got, tt.want)
			}
		})
	}
}

// Sliding the blank is reversible, so neighbor generation must be
// symmetric: every neighbor of A lists A among its own neighbors.
func TestNeighbors_Symmetric(t *testing.T) {
	rng := testRNG(8)
	for i := 0; i < 100; i++ {
		a := Shuffle(25, rng)
		for _, nb := range a.Neighbors() {
			b := nb.State.(State)
			back := false
			for _, rev := range b.Neighbors() {
				if rev.State.(State) == a {
					back = true
					break
				}
			}
			if !back {
				t.Fatalf("neighbor relation not symmetric:\n%s\n--\n%s", a, b)
			}
		}
	}
}

func TestNeighbors_StatesRemainValid(t *testing.T) {
	rng := testRNG(12)
	s := Shuffle(40, rng)
	for _, nb := range s.Neighbors() {
		if _, err := New([9]int(nb.State.(State))); err != nil {
			t.Fatalf("neighbor violates board invariants: %v", err)
		}
	}
}

func TestShuffle_ZeroStepsIsGoal(t *testing.T) {
	if got := Shuffle(0, testRNG(1)); got != Goal() {
		t.Errorf("Shuffle(0) = %v, want goal", got)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	a := Shuffle(40, testRNG(99))
	b := Shuffle(40, testRNG(99))
	if a != b {
		t.Errorf("seeded shuffles diverged: %v vs %v", a, b)
	}
}

func TestState_Key(t *testing.T) {
	if got := Goal().Key(); got != "123456780" {
		t.Errorf("Goal().Key() = %q, want %q", got, "123456780")
	}
	a := Shuffle(30, testRNG(2))
	b := Shuffle(30, testRNG(3))
	if a != b && a.Key() == b.Key() {
		t.Errorf("distinct states share key %q", a.Key())
	}
}

func TestState_String(t *testing.T) {
	want := "1 2 3\n4 5 6\n7 8 _"
	if got := Goal().String(); got != want {
		t.Errorf("Goal().String() = %q, want %q", got, want)
	}
}

func TestProblem_ProposeIsOneLegalMove(t *testing.T) {
	p := NewProblem()
	rng := testRNG(6)
	s := Shuffle(30, rng)
	for i := 0; i < 200; i++ {
		nb := p.Propose(s, rng)
		next := nb.State.(State)
		// The proposed state must be in the enumerated neighbor set.
		found := false
		for _, cand := range s.Neighbors() {
			if cand.State.(State) == next {
				found = true
			}
		}
		if !found {
			t.Fatalf("proposal is not a legal neighbor:\n%s\n--\n%s", s, next)
		}
		s = next
	}
}

func TestProblem_SolvedMatchesCost(t *testing.T) {
	p := NewProblem()
	rng := testRNG(14)
	for i := 0; i < 200; i++ {
		s := Shuffle(20, rng)
		if p.Solved(s) != (Cost(s) == 0) {
			t.Fatalf("Solved and Cost disagree for\n%s", s)
		}
	}
}

func TestDefaultParams_Valid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams invalid: %v", err)
	}
}
