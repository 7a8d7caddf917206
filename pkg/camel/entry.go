package camel

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

// ErrMalformedLine is returned when a line is not "<hand> <bet>"
var ErrMalformedLine = errors.New("malformed line")

// Entry is a hand and the bet placed on it
type Entry struct {
	Hand Hand
	Bet  int
}

// WithJokers returns the entry with every Jack in its hand turned into a Joker
func (e Entry) WithJokers() Entry {
	return Entry{
		Hand: e.Hand.WithJokers(),
		Bet:  e.Bet,
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %d", e.Hand, e.Bet)
}

// ParseEntry parses a line such as "32T3K 765"
func ParseEntry(line string) (Entry, error) {
	handStr, betStr, ok := strings.Cut(line, " ")
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing bet in %q", ErrMalformedLine, line)
	}

	hand, err := ParseHand(handStr)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	bet, err := strconv.Atoi(betStr)
	if err != nil || bet < 0 {
		return Entry{}, fmt.Errorf("%w: invalid bet %q", ErrMalformedLine, betStr)
	}

	return Entry{
		Hand: hand,
		Bet:  bet,
	}, nil
}

// ReadEntries parses every line of r. The first malformed line aborts the read.
func ReadEntries(r io.Reader) ([]Entry, error) {
	entries := make([]Entry, 0)
	err := puzzle.ScanLines(r, func(lineNo int, line string) error {
		entry, err := ParseEntry(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
