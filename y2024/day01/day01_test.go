package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2024/day01"
)

func TestParse(t *testing.T) {
	left, right, err := day01.Parse(day01.Input)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, left)
	assert.Equal(t, []int{4, 3, 5, 3, 9, 3}, right)
}

func TestParts(t *testing.T) {
	p1, err := day01.Part1(day01.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(11), p1)

	p2, err := day01.Part2(day01.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(31), p2)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"1 2 3", "1", "a 2"} {
		_, _, err := day01.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
