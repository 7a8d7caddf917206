package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"aoc2023/internal/config"
	"aoc2023/internal/util"
)

// ErrOpenInput is returned when the input file cannot be opened
var ErrOpenInput = errors.New("could not open input")

// Env is what a solver gets besides its input
type Env struct {
	Config config.Config
	Log    logrus.FieldLogger
}

// Solver computes one answer from the complete input
type Solver func(env Env, r io.Reader) (int, error)

// Puzzle is a program with one solver per part
type Puzzle struct {
	Name  string
	Short string
	Parts []Solver
}

// Run solves every part of the puzzle against the file at path.
// Each part reads the file on its own. Parts run one at a time in part order
// and the first failure stops the run.
func (p Puzzle) Run(cfg config.Config, path string) ([]int, error) {
	log := logrus.WithFields(logrus.Fields{
		"puzzle": p.Name,
		"run":    util.NewRunID(),
		"input":  path,
	})

	answers := make([]int, len(p.Parts))

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(1)
	for i, solve := range p.Parts {
		i, solve := i, solve
		part := i + 1
		eg.Go(func() error {
			// an earlier part failed
			if err := ctx.Err(); err != nil {
				return err
			}

			partLog := log.WithField("part", part)
			answer, err := solveFile(Env{Config: cfg, Log: partLog}, path, solve)
			if err != nil {
				return fmt.Errorf("part %d: %w", part, err)
			}

			partLog.WithField("answer", answer).Debug("solved")
			answers[i] = answer
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

func solveFile(env Env, path string, solve Solver) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer file.Close()

	return solve(env, file)
}
