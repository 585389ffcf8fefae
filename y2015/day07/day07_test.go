package day07_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/core"
	"github.com/katalvlaran/aoc/dfs"
	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2015/day07"
)

func TestEvaluate(t *testing.T) {
	lines := puzzle.Lines(day07.Input)
	c, err := day07.Parse(strings.Join(lines[:8], "\n"))
	require.NoError(t, err)

	got, err := c.Evaluate()
	require.NoError(t, err)
	want := map[string]uint16{
		"d": 72, "e": 507, "f": 492, "g": 114,
		"h": 65412, "i": 65079, "x": 123, "y": 456,
	}
	assert.Equal(t, want, got)
}

func TestParts(t *testing.T) {
	p1, err := day07.Part1(day07.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(228), p1)

	p2, err := day07.Part2(day07.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(456), p2)
}

func TestLiteralOperands(t *testing.T) {
	p1, err := day07.Part1("1 AND x -> a\n7 -> x")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(1), p1)
}

func TestErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":    "x XOR y -> z",
		"no arrow":  "123 x",
		"unknown":   "x -> a",
		"duplicate": "1 -> a\n2 -> a",
		"no a":      "1 -> b",
	}
	for name, in := range cases {
		_, err := day07.Part1(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, name)
	}

	_, err := day07.Part1("b -> a\na -> b")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = day07.Part1("x -> x\n1 -> a")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}
