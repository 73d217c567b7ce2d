// Command annealkit solves the bundled puzzles with simulated annealing
// and replays the recorded trajectories in the terminal or a window.
package main

func main() {
	Execute()
}
