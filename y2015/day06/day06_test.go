package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2015/day06"
)

func TestParse(t *testing.T) {
	got, err := day06.Parse("toggle 5,9 through 2,3")
	require.NoError(t, err)
	assert.Equal(t, []day06.Instruction{{Action: day06.Toggle, X1: 2, Y1: 3, X2: 5, Y2: 9}}, got)

	for _, bad := range []string{"turn up 0,0 through 1,1", "toggle 0,0 through 1000,1", "toggle 0,0 - 1,1"} {
		_, err = day06.Parse(bad)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}
}

func TestParts(t *testing.T) {
	p1, err := day06.Part1(day06.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(998996), p1)

	p2, err := day06.Part2(day06.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(1001996), p2)
}

func TestSmallCases(t *testing.T) {
	p1, err := day06.Part1("turn on 0,0 through 999,999\ntoggle 0,0 through 999,999")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(0), p1)

	p2, err := day06.Part2("turn off 0,0 through 0,0\nturn on 0,0 through 0,0")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(1), p2)

	p2, err = day06.Part2("toggle 0,0 through 999,999")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(2000000), p2)
}
