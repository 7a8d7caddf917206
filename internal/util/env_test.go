package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	t.Setenv("AOC_TEST_FOO", "")
	a.Equal("default", Getenv("AOC_TEST_FOO", "default"))

	t.Setenv("AOC_TEST_FOO", "bar")
	a.Equal("bar", Getenv("AOC_TEST_FOO", "default"))
}
