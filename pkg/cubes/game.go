package cubes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/config"
)

// ErrMalformedGame is returned when a line is not "Game <id>: <reveals>"
var ErrMalformedGame = errors.New("invalid input")

// ErrInvalidGameID is returned alongside a parsed game whose id is not a number
var ErrInvalidGameID = errors.New("invalid game id")

// Reveal is the number of cubes of each color shown at once
type Reveal struct {
	Red   int
	Green int
	Blue  int
}

// Power returns the product of the three counts
func (r Reveal) Power() int {
	return r.Red * r.Green * r.Blue
}

// Within returns true if no count exceeds the bag
func (r Reveal) Within(bag config.Bag) bool {
	return r.Red <= bag.Red && r.Green <= bag.Green && r.Blue <= bag.Blue
}

// Game is one line of the input
type Game struct {
	ID      int
	Reveals []Reveal
}

// MinimumSet returns the fewest cubes of each color that make every reveal possible
func (g Game) MinimumSet() Reveal {
	var set Reveal
	for _, r := range g.Reveals {
		set.Red = max(set.Red, r.Red)
		set.Green = max(set.Green, r.Green)
		set.Blue = max(set.Blue, r.Blue)
	}

	return set
}

// Possible returns true if every reveal could have come out of the bag
func (g Game) Possible(bag config.Bag) bool {
	for _, r := range g.Reveals {
		if !r.Within(bag) {
			return false
		}
	}

	return true
}

// ParseGame parses a line such as "Game 1: 3 blue, 4 red; 1 red, 2 green".
// A game without a numeric id is still returned, with id 0 and ErrInvalidGameID.
func ParseGame(line string) (Game, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return Game{}, fmt.Errorf("%w: %q", ErrMalformedGame, line)
	}

	game := Game{}
	for _, reveal := range strings.Split(parts[1], ";") {
		game.Reveals = append(game.Reveals, parseReveal(reveal))
	}

	fields := strings.Fields(parts[0])
	if len(fields) == 0 {
		return game, fmt.Errorf("%w: %q", ErrInvalidGameID, parts[0])
	}

	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return game, fmt.Errorf("%w: %q", ErrInvalidGameID, parts[0])
	}

	game.ID = id
	return game, nil
}

// parseReveal parses " 3 blue, 4 red". Unknown colors and bad counts are ignored.
func parseReveal(s string) Reveal {
	var r Reveal
	for _, cubes := range strings.Split(s, ",") {
		fields := strings.Split(cubes, " ")
		if len(fields) != 3 {
			continue
		}

		n, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		switch fields[2] {
		case "red":
			r.Red += n
		case "green":
			r.Green += n
		case "blue":
			r.Blue += n
		}
	}

	return r
}
