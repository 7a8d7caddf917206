package trebuchet

import (
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"aoc2023/internal/puzzle"
)

// ErrNoDigits is returned when a line does not contain any digit
var ErrNoDigits = errors.New("could not find two digits")

// digitWords are the spelled-out digits, index+1 is the value
var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i]
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}

	if words {
		for n, word := range digitWords {
			if strings.HasPrefix(s[i:], word) {
				return n + 1, true
			}
		}
	}

	return 0, false
}

// FirstDigit returns the first digit in s.
// If words is true, spelled-out digits count as well.
func FirstDigit(s string, words bool) (int, bool) {
	for i := 0; i < len(s); i++ {
		if d, ok := digitAt(s, i, words); ok {
			return d, true
		}
	}

	return 0, false
}

// LastDigit returns the last digit in s.
// Spelled-out digits may overlap, "twone" ends with a one.
func LastDigit(s string, words bool) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if d, ok := digitAt(s, i, words); ok {
			return d, true
		}
	}

	return 0, false
}

// CalibrationValue combines the first and last digit of the line
func CalibrationValue(line string, words bool) (int, error) {
	first, ok := FirstDigit(line, words)
	if !ok {
		return 0, ErrNoDigits
	}

	// a line with a first digit always has a last digit
	last, _ := LastDigit(line, words)
	return 10*first + last, nil
}

// Sum returns the sum of the calibration values of every line in r.
// Lines without a digit are logged and skipped.
func Sum(r io.Reader, words bool, log logrus.FieldLogger) (int, error) {
	sum := 0
	err := puzzle.ScanLines(r, func(lineNo int, line string) error {
		value, err := CalibrationValue(line, words)
		if err != nil {
			log.WithField("line", lineNo).Warn(err.Error())
			return nil
		}

		sum += value
		return nil
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}

// Solvers returns the puzzle solvers.
// Part one only counts numeric digits, part two also counts spelled-out ones.
func Solvers() []puzzle.Solver {
	return []puzzle.Solver{solver(false), solver(true)}
}

func solver(words bool) puzzle.Solver {
	return func(env puzzle.Env, r io.Reader) (int, error) {
		return Sum(r, words, env.Log)
	}
}
