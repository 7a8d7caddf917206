package cubes

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"aoc2023/internal/config"
	"aoc2023/internal/puzzle"
)

// reduce calls fn for every well-formed game in r and sums the results.
// Malformed lines are logged and count as zero. A game with a bad id is logged
// and still reduced, with id 0.
func reduce(r io.Reader, log logrus.FieldLogger, fn func(Game) int) (int, error) {
	sum := 0
	err := puzzle.ScanLines(r, func(lineNo int, line string) error {
		game, err := ParseGame(line)
		if errors.Is(err, ErrInvalidGameID) {
			log.WithField("line", lineNo).WithError(err).Warn("could not parse game id")
		} else if err != nil {
			log.WithField("line", lineNo).WithError(err).Warn("could not parse game")
			return nil
		}

		sum += fn(game)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}

// SumPossibleIDs returns the sum of the ids of the games the bag could have produced
func SumPossibleIDs(r io.Reader, bag config.Bag, log logrus.FieldLogger) (int, error) {
	return reduce(r, log, func(g Game) int {
		if g.Possible(bag) {
			return g.ID
		}

		return 0
	})
}

// SumPower returns the sum of the powers of every game's minimum set
func SumPower(r io.Reader, log logrus.FieldLogger) (int, error) {
	return reduce(r, log, func(g Game) int {
		return g.MinimumSet().Power()
	})
}

// Solvers returns the puzzle solvers for both parts
func Solvers() []puzzle.Solver {
	return []puzzle.Solver{
		func(env puzzle.Env, r io.Reader) (int, error) {
			return SumPossibleIDs(r, env.Config.Cubes.Bag, env.Log)
		},
		func(env puzzle.Env, r io.Reader) (int, error) {
			return SumPower(r, env.Log)
		},
	}
}
