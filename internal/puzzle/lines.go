package puzzle

import (
	"bufio"
	"fmt"
	"io"
)

// ScanLines calls fn for every line of r with its 1-based line number.
// Scanning stops at the first error returned by fn.
func ScanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	return nil
}
