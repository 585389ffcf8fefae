package day02_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2023/day02"
)

func TestMinimum(t *testing.T) {
	games, err := day02.Parse(day02.Input)
	require.NoError(t, err)
	require.Len(t, games, 5)

	assert.Equal(t, day02.Set{Red: 4, Green: 2, Blue: 6}, games[0].Minimum())
	assert.Equal(t, 48, games[0].Minimum().Power())
	assert.Equal(t, day02.Set{Red: 20, Green: 13, Blue: 6}, games[2].Minimum())
	assert.False(t, games[2].Minimum().Within(day02.Bag))
}

func TestParts(t *testing.T) {
	p1, err := day02.Part1(day02.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(8), p1)

	p2, err := day02.Part2(day02.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(2286), p2)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"Game 1 3 blue", "Game x: 3 blue", "Game 1: 3 purple", "Game 1: blue 3"} {
		_, err := day02.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
