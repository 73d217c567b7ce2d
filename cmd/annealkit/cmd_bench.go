package main

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/annealkit/pkg/anneal"
	"github.com/gitrdm/annealkit/pkg/queens"
	"github.com/gitrdm/annealkit/pkg/tiles"
)

var benchFlags struct {
	params  paramFlags
	puzzle  string
	n       int
	shuffle int
	runs    int
}

// benchRun is the outcome of one independent seeded solve.
type benchRun struct {
	seed       uint64
	solved     bool
	cost       int
	iterations int
	attempts   int
	elapsed    time.Duration
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure solve rate over many independently seeded runs",
	Long: `Runs the chosen puzzle repeatedly, each run with its own seed, and
reports how often annealing converges and how much work it needed.
Runs execute concurrently, one solver per seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			problem anneal.Problem
			def     anneal.Params
			err     error
		)
		switch benchFlags.puzzle {
		case "tiles":
			p := tiles.NewProblem()
			p.ShuffleSteps = benchFlags.shuffle
			problem, def = p, tiles.DefaultParams()
		case "queens":
			problem, err = queens.NewProblem(benchFlags.n)
			if err != nil {
				return err
			}
			def = queens.DefaultParams()
		default:
			return fmt.Errorf("unknown puzzle %q (want tiles or queens)", benchFlags.puzzle)
		}

		params, err := resolveParams(cmd.Flags(), &benchFlags.params, def)
		if err != nil {
			return err
		}
		if benchFlags.runs < 1 {
			return fmt.Errorf("--runs must be at least 1, got %d", benchFlags.runs)
		}

		baseSeed := uint64(1)
		if flagSeed >= 0 {
			baseSeed = uint64(flagSeed)
		}

		results := make([]benchRun, benchFlags.runs)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(runtime.NumCPU())
		for i := range results {
			g.Go(func() error {
				seed := baseSeed + uint64(i)
				solver := anneal.NewSolver(problem,
					anneal.WithLogger(newLogger()),
					anneal.WithSeed(seed),
				)
				start := time.Now()
				sol, err := solver.Solve(ctx, params)
				if err != nil {
					return err
				}
				last := sol.Attempts[len(sol.Attempts)-1]
				results[i] = benchRun{
					seed:       seed,
					solved:     sol.Solved,
					cost:       sol.Cost,
					iterations: last.Iterations,
					attempts:   len(sol.Attempts),
					elapsed:    time.Since(start),
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		printBench(problem.Name(), results)
		return nil
	},
}

func printBench(name string, results []benchRun) {
	solved := 0
	totalIters := 0
	costs := make([]int, 0, len(results))
	var totalElapsed time.Duration
	for _, r := range results {
		if r.solved {
			solved++
			totalIters += r.iterations
		}
		costs = append(costs, r.cost)
		totalElapsed += r.elapsed
	}
	sort.Ints(costs)

	fmt.Printf("%s: %d/%d solved (%.0f%%)\n",
		name, solved, len(results), 100*float64(solved)/float64(len(results)))
	if solved > 0 {
		fmt.Printf("mean iterations on success: %d\n", totalIters/solved)
	}
	fmt.Printf("best final cost: %d, worst: %d\n", costs[0], costs[len(costs)-1])
	fmt.Printf("mean wall time per run: %s\n", totalElapsed/time.Duration(len(results)))
}

func init() {
	registerParamFlags(benchCmd.Flags(), &benchFlags.params, queens.DefaultParams())
	benchCmd.Flags().StringVar(&benchFlags.puzzle, "puzzle", "queens", "Puzzle to benchmark (tiles or queens)")
	benchCmd.Flags().IntVar(&benchFlags.n, "n", 8, "Board size for queens")
	benchCmd.Flags().IntVar(&benchFlags.shuffle, "shuffle", tiles.DefaultShuffleSteps,
		"Random-walk length used to shuffle the tiles board")
	benchCmd.Flags().IntVar(&benchFlags.runs, "runs", 10, "Independent seeded runs")
}
