package camel

import (
	"fmt"
	"io"
	"sort"

	"aoc2023/internal/puzzle"
)

// Mode selects how jacks are scored
type Mode int

// Mode constants
const (
	// Standard scores a J as a Jack
	Standard Mode = iota

	// Wildcard scores a J as a Joker: the weakest card, but wild for the hand type
	Wildcard
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Wildcard:
		return "wildcard"
	default:
		panic(fmt.Sprintf("unknown mode: %d", m))
	}
}

type byStrength []Entry

func (b byStrength) Len() int {
	return len(b)
}

func (b byStrength) Less(i, j int) bool {
	return b[i].Hand.Less(b[j].Hand)
}

func (b byStrength) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

// Rank returns the entries sorted from the weakest hand to the strongest.
// The entry at index i has rank i+1. The input slice is not modified.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.Stable(byStrength(ranked))

	return ranked
}

// Winnings returns the sum of rank * bet over entries that are already ranked
func Winnings(ranked []Entry) int {
	total := 0
	for i, entry := range ranked {
		total += (i + 1) * entry.Bet
	}

	return total
}

// TotalWinnings ranks the entries under the mode and returns their winnings
func TotalWinnings(entries []Entry, mode Mode) int {
	if mode == Wildcard {
		wild := make([]Entry, len(entries))
		for i, entry := range entries {
			wild[i] = entry.WithJokers()
		}

		entries = wild
	}

	return Winnings(Rank(entries))
}

// Solve reads every entry from r and returns the total winnings under the mode
func Solve(r io.Reader, mode Mode) (int, error) {
	entries, err := ReadEntries(r)
	if err != nil {
		return 0, err
	}

	return TotalWinnings(entries, mode), nil
}

// Solvers returns the puzzle solvers, standard mode first
func Solvers() []puzzle.Solver {
	return []puzzle.Solver{solver(Standard), solver(Wildcard)}
}

func solver(mode Mode) puzzle.Solver {
	return func(_ puzzle.Env, r io.Reader) (int, error) {
		return Solve(r, mode)
	}
}
