package puzzle

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestScanLines(t *testing.T) {
	a := assert.New(t)

	var lines []string
	var numbers []int
	err := ScanLines(strings.NewReader("a\r\nb\n\nc"), func(lineNo int, line string) error {
		numbers = append(numbers, lineNo)
		lines = append(lines, line)
		return nil
	})
	a.NoError(err)
	a.Equal([]string{"a", "b", "", "c"}, lines)
	a.Equal([]int{1, 2, 3, 4}, numbers)
}

func TestScanLines_stopsAtFirstError(t *testing.T) {
	a := assert.New(t)
	errStop := errors.New("stop")

	calls := 0
	err := ScanLines(strings.NewReader("a\nb\nc"), func(lineNo int, line string) error {
		calls++
		if lineNo == 2 {
			return errStop
		}

		return nil
	})
	a.ErrorIs(err, errStop)
	a.Equal(2, calls)
}

func TestScanLines_readError(t *testing.T) {
	errRead := errors.New("disk on fire")
	err := ScanLines(iotest.ErrReader(errRead), func(int, string) error {
		return nil
	})
	assert.ErrorIs(t, err, errRead)
	assert.Contains(t, err.Error(), "could not read input")
}
