package main

import (
	"github.com/spf13/cobra"

	"aoc2023/internal/puzzle"
	"aoc2023/pkg/camel"
)

var camelCards = puzzle.Puzzle{
	Name:  "camelcards",
	Short: "Rank camel card hands and total their winnings",
	Parts: camel.Solvers(),
}

func newCommand() *cobra.Command {
	return puzzle.NewCommand(camelCards)
}

func main() {
	puzzle.Execute(camelCards)
}
