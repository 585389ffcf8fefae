package day09_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2022/day09"
)

const larger = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20`

func TestParts(t *testing.T) {
	p1, err := day09.Part1(day09.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(13), p1)

	p2, err := day09.Part2(day09.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(1), p2)

	p2, err = day09.Part2(larger)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(36), p2)
}

func TestSimulate_Short(t *testing.T) {
	// R 2 drags the tail one step; U 2 pulls it diagonally to (2,1).
	motions, err := day09.Parse("R 2\nU 2")
	require.NoError(t, err)
	assert.Equal(t, 3, day09.Simulate(motions, 2))

	// the head never leaves the tail's neighbourhood
	motions, err = day09.Parse("R 1\nU 1\nL 2\nD 2")
	require.NoError(t, err)
	assert.Equal(t, 1, day09.Simulate(motions, 2))
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"X 3", "R", "R -1", "R x"} {
		_, err := day09.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
