package main

import (
	"github.com/spf13/cobra"

	"aoc2023/internal/puzzle"
	"aoc2023/pkg/cubes"
)

var cubeConundrum = puzzle.Puzzle{
	Name:  "cubeconundrum",
	Short: "Check cube games against a bag and sum minimum set powers",
	Parts: cubes.Solvers(),
}

func newCommand() *cobra.Command {
	return puzzle.NewCommand(cubeConundrum)
}

func main() {
	puzzle.Execute(cubeConundrum)
}
