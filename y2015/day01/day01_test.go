package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2015/day01"
)

func TestPart1(t *testing.T) {
	cases := map[string]int{
		"(())":    0,
		"()()":    0,
		"(((":     3,
		"(()(()(": 3,
		"))(((((": 3,
		"())":     -1,
		")))":     -3,
		")())())": -3,
	}
	for in, want := range cases {
		got, err := day01.Part1(in)
		require.NoError(t, err, in)
		assert.Equal(t, puzzle.Int(want), got, in)
	}
}

func TestPart2(t *testing.T) {
	got, err := day01.Part2(")")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(1), got)

	got, err = day01.Part2("()())")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(5), got)

	got, err = day01.Part2("(((")
	require.NoError(t, err)
	assert.False(t, got.OK())
}

func TestMalformed(t *testing.T) {
	_, err := day01.Part1("(x)")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
