package main

import (
	"github.com/spf13/cobra"

	"aoc2023/internal/puzzle"
	"aoc2023/pkg/trebuchet"
)

var calibration = puzzle.Puzzle{
	Name:  "trebuchet",
	Short: "Sum the calibration values of a trebuchet document",
	Parts: trebuchet.Solvers(),
}

func newCommand() *cobra.Command {
	return puzzle.NewCommand(calibration)
}

func main() {
	puzzle.Execute(calibration)
}
