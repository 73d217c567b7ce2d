package main

import (
	"github.com/spf13/cobra"

	"github.com/gitrdm/annealkit/internal/tui"
	"github.com/gitrdm/annealkit/pkg/anneal"
	"github.com/gitrdm/annealkit/pkg/queens"
)

var queensFlags struct {
	params   paramFlags
	n        int
	parallel int
	replay   bool
}

var queensCmd = &cobra.Command{
	Use:   "queens",
	Short: "Place N non-attacking queens on an N-by-N board",
	Long: `Starts from a random placement of one queen per column and anneals
until no two queens share a row or diagonal. Boards smaller than 4 have
no solution and are rejected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParams(cmd.Flags(), &queensFlags.params, queens.DefaultParams())
		if err != nil {
			return err
		}
		problem, err := queens.NewProblem(queensFlags.n)
		if err != nil {
			return err
		}

		solver := anneal.NewSolver(problem, solverOptions(queensFlags.parallel)...)
		sol, err := solver.Solve(cmd.Context(), params)
		if err != nil {
			return err
		}
		printSummary(sol)

		if queensFlags.replay {
			cfg := tui.DefaultConfig()
			cfg.Title = problem.Name() + " replay"
			return tui.Run(sol.Trajectory, func(s anneal.State) string {
				return s.(queens.State).String()
			}, cfg)
		}
		return nil
	},
}

func init() {
	registerParamFlags(queensCmd.Flags(), &queensFlags.params, queens.DefaultParams())
	queensCmd.Flags().IntVar(&queensFlags.n, "n", 8, "Board size (at least 4)")
	queensCmd.Flags().IntVar(&queensFlags.parallel, "parallel", 1,
		"Independent attempts to run concurrently per round")
	queensCmd.Flags().BoolVar(&queensFlags.replay, "replay", false,
		"Replay the trajectory in the terminal after solving")
}
