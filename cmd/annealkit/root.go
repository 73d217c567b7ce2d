package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/annealkit/pkg/anneal"
)

var (
	flagVerbose bool   // structured solver logs on stderr
	flagSeed    int64  // fixed random seed, -1 draws a fresh one
	flagPreset  string // YAML parameter preset path
)

var rootCmd = &cobra.Command{
	Use:   "annealkit",
	Short: "Simulated-annealing solver for the 8-tile puzzle and N-Queens",
	Long: `annealkit runs a generic simulated-annealing engine against two
discrete puzzles: the 8-tile sliding puzzle and N-Queens.

Every solve records the full trajectory of accepted states, which can be
replayed step by step in the terminal (--replay) or, for tiles, in a
graphical window (--gui).

Examples:
  annealkit tiles --shuffle 30 --replay
  annealkit queens --n 8 --seed 42
  annealkit bench --puzzle queens --n 6 --runs 20`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Log every annealing attempt to stderr")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", -1,
		"Fixed random seed for reproducible runs (-1 draws a fresh seed)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "",
		"YAML file with annealing parameters (flags override preset values)")

	rootCmd.AddCommand(tilesCmd)
	rootCmd.AddCommand(queensCmd)
	rootCmd.AddCommand(benchCmd)
}

// newLogger builds the solver logger: silent unless --verbose is set.
func newLogger() *slog.Logger {
	if !flagVerbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// solverOptions assembles the common solver options from the persistent
// flags.
func solverOptions(parallel int) []anneal.Option {
	opts := []anneal.Option{anneal.WithLogger(newLogger())}
	if flagSeed >= 0 {
		opts = append(opts, anneal.WithSeed(uint64(flagSeed)))
	}
	if parallel > 1 {
		opts = append(opts, anneal.WithParallelAttempts(parallel))
	}
	return opts
}

// printSummary writes the solve outcome for both subcommands.
func printSummary(sol *anneal.Solution) {
	last := sol.Attempts[len(sol.Attempts)-1]
	if sol.Solved {
		fmt.Printf("solved in %d iterations (%d attempt(s), %d accepted steps)\n",
			last.Iterations, len(sol.Attempts), sol.Trajectory.Len()-1)
	} else {
		fmt.Printf("unsolved: best cost %d after %d attempt(s)\n",
			sol.Cost, len(sol.Attempts))
	}
	fmt.Println()
	fmt.Println(sol.Best)
}
