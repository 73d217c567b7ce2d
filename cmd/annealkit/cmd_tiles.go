package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/annealkit/internal/gui"
	"github.com/gitrdm/annealkit/internal/tui"
	"github.com/gitrdm/annealkit/pkg/anneal"
	"github.com/gitrdm/annealkit/pkg/tiles"
)

var tilesFlags struct {
	params   paramFlags
	shuffle  int
	parallel int
	replay   bool
	gui      bool
}

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Solve a shuffled 8-tile sliding puzzle",
	Long: `Shuffles the 8-tile board by a random walk from the goal and anneals
it back. The shuffle length bounds how far from the goal the start can
be, so short shuffles make easy instances.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParams(cmd.Flags(), &tilesFlags.params, tiles.DefaultParams())
		if err != nil {
			return err
		}
		if tilesFlags.shuffle < 0 {
			return fmt.Errorf("--shuffle must be non-negative, got %d", tilesFlags.shuffle)
		}

		problem := tiles.NewProblem()
		problem.ShuffleSteps = tilesFlags.shuffle

		solver := anneal.NewSolver(problem, solverOptions(tilesFlags.parallel)...)
		sol, err := solver.Solve(cmd.Context(), params)
		if err != nil {
			return err
		}
		printSummary(sol)

		if tilesFlags.gui {
			return gui.RunTiles(sol.Trajectory)
		}
		if tilesFlags.replay {
			cfg := tui.DefaultConfig()
			cfg.Title = "8-tiles replay"
			return tui.Run(sol.Trajectory, func(s anneal.State) string {
				return s.(tiles.State).String()
			}, cfg)
		}
		return nil
	},
}

func init() {
	registerParamFlags(tilesCmd.Flags(), &tilesFlags.params, tiles.DefaultParams())
	tilesCmd.Flags().IntVar(&tilesFlags.shuffle, "shuffle", tiles.DefaultShuffleSteps,
		"Random-walk length used to shuffle the board")
	tilesCmd.Flags().IntVar(&tilesFlags.parallel, "parallel", 1,
		"Independent attempts to run concurrently per round")
	tilesCmd.Flags().BoolVar(&tilesFlags.replay, "replay", false,
		"Replay the trajectory in the terminal after solving")
	tilesCmd.Flags().BoolVar(&tilesFlags.gui, "gui", false,
		"Replay the trajectory in a graphical window after solving")
	tilesCmd.MarkFlagsMutuallyExclusive("replay", "gui")
}
