package day02_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2024/day02"
)

func TestSafe(t *testing.T) {
	cases := []struct {
		levels         []int
		safe, dampened bool
	}{
		{[]int{7, 6, 4, 2, 1}, true, true},
		{[]int{1, 2, 7, 8, 9}, false, false},
		{[]int{9, 7, 6, 2, 1}, false, false},
		{[]int{1, 3, 2, 4, 5}, false, true},
		{[]int{8, 6, 4, 4, 1}, false, true},
		{[]int{1, 3, 6, 7, 9}, true, true},
		{[]int{5, 1, 2, 3}, false, true}, // first level is the bad one
		{[]int{4}, true, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.safe, day02.Safe(tc.levels), "%v", tc.levels)
		assert.Equal(t, tc.dampened, day02.Dampened(tc.levels), "%v", tc.levels)
	}
}

func TestParts(t *testing.T) {
	p1, err := day02.Part1(day02.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(2), p1)

	p2, err := day02.Part2(day02.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(4), p2)
}

func TestMalformed(t *testing.T) {
	_, err := day02.Parse("1 2 x")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
