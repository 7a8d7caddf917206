package puzzle

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"aoc2023/internal/config"
)

// countLines and sumLengths are two independent toy parts
func countLines(_ Env, r io.Reader) (int, error) {
	n := 0
	err := ScanLines(r, func(int, string) error {
		n++
		return nil
	})

	return n, err
}

func sumLengths(_ Env, r io.Reader) (int, error) {
	n := 0
	err := ScanLines(r, func(_ int, line string) error {
		n += len(line)
		return nil
	})

	return n, err
}

var errBadInput = errors.New("bad input")

func failing(_ Env, r io.Reader) (int, error) {
	return 0, errBadInput
}

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestPuzzle_Run(t *testing.T) {
	defer goleak.VerifyNone(t)
	a := assert.New(t)

	p := Puzzle{Name: "toy", Parts: []Solver{countLines, sumLengths}}
	answers, err := p.Run(config.DefaultConfig(), writeInput(t, "abc\nde\n"))
	require.NoError(t, err)
	a.Equal([]int{2, 5}, answers)
}

func TestPuzzle_Run_errors(t *testing.T) {
	defer goleak.VerifyNone(t)
	a := assert.New(t)

	p := Puzzle{Name: "toy", Parts: []Solver{countLines, failing}}
	_, err := p.Run(config.DefaultConfig(), writeInput(t, "abc\n"))
	a.ErrorIs(err, errBadInput)
	a.Contains(err.Error(), "part 2")

	p = Puzzle{Name: "toy", Parts: []Solver{countLines}}
	_, err = p.Run(config.DefaultConfig(), filepath.Join(t.TempDir(), "missing.txt"))
	a.ErrorIs(err, ErrOpenInput)
	a.ErrorIs(err, os.ErrNotExist)
}

func TestPuzzle_Run_partsInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	a := assert.New(t)

	var firstDone atomic.Bool
	first := func(Env, io.Reader) (int, error) {
		time.Sleep(20 * time.Millisecond)
		firstDone.Store(true)
		return 1, nil
	}

	second := func(Env, io.Reader) (int, error) {
		if !firstDone.Load() {
			return 0, errors.New("part 2 started before part 1 returned")
		}

		return 2, nil
	}

	p := Puzzle{Name: "toy", Parts: []Solver{first, second}}
	answers, err := p.Run(config.DefaultConfig(), writeInput(t, "abc\n"))
	require.NoError(t, err)
	a.Equal([]int{1, 2}, answers)
}

func TestPuzzle_Run_firstFailureStops(t *testing.T) {
	defer goleak.VerifyNone(t)
	a := assert.New(t)

	calls := 0
	later := func(Env, io.Reader) (int, error) {
		calls++
		return 0, errors.New("should not run")
	}

	p := Puzzle{Name: "toy", Parts: []Solver{failing, later}}
	_, err := p.Run(config.DefaultConfig(), writeInput(t, "abc\n"))
	a.ErrorIs(err, errBadInput)
	a.Contains(err.Error(), "part 1")
	a.Equal(0, calls)
}

func runCommand(t *testing.T, p Puzzle, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("AOC_CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewCommand(p)
	// a nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewCommand(t *testing.T) {
	a := assert.New(t)
	p := Puzzle{Name: "toy", Parts: []Solver{countLines, sumLengths}}

	stdout, _, err := runCommand(t, p, writeInput(t, "abc\nde\n"))
	require.NoError(t, err)
	a.Equal("Part 1: 2\nPart 2: 5\n", stdout)
}

func TestNewCommand_usage(t *testing.T) {
	a := assert.New(t)

	calls := 0
	p := Puzzle{Name: "toy", Parts: []Solver{func(Env, io.Reader) (int, error) {
		calls++
		return 0, nil
	}}}

	stdout, stderr, err := runCommand(t, p)
	a.NoError(err)
	a.Empty(stdout)
	a.Equal("Usage: toy <input-file>\n", stderr)
	a.Equal(0, calls)

	_, _, err = runCommand(t, p, "one", "two")
	a.Error(err)
	a.Equal(0, calls)
}

func TestNewCommand_usageIgnoresConfig(t *testing.T) {
	p := Puzzle{Name: "toy", Parts: []Solver{countLines}}

	broken := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("log: [unclosed\n"), 0o600))

	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"broken config file", map[string]string{"AOC_CONFIG_FILE": broken}},
		{"bad log level", map[string]string{"AOC_CONFIG_FILE": broken + ".missing", "AOC_LOG_LEVEL": "chatty"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			stderr := &bytes.Buffer{}
			cmd := NewCommand(p)
			cmd.SetArgs([]string{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(stderr)

			a.NoError(cmd.Execute())
			a.Equal("Usage: toy <input-file>\n", stderr.String())
		})
	}
}

func TestNewCommand_errors(t *testing.T) {
	a := assert.New(t)
	p := Puzzle{Name: "toy", Parts: []Solver{countLines}}

	stdout, _, err := runCommand(t, p, filepath.Join(t.TempDir(), "missing.txt"))
	a.ErrorIs(err, ErrOpenInput)
	a.Empty(stdout)

	t.Setenv("AOC_LOG_LEVEL", "chatty")
	cmd := NewCommand(p)
	cmd.SetArgs([]string{writeInput(t, "abc")})
	cmd.SetOut(&strings.Builder{})
	err = cmd.Execute()
	a.Error(err)
	a.Contains(err.Error(), "log level")
}
