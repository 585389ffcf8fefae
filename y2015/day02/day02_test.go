package day02_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2015/day02"
)

func TestBox(t *testing.T) {
	boxes, err := day02.Parse("2x3x4\n1x1x10")
	require.NoError(t, err)
	require.Len(t, boxes, 2)

	assert.Equal(t, 58, boxes[0].Paper())
	assert.Equal(t, 43, boxes[1].Paper())
	assert.Equal(t, 34, boxes[0].Ribbon())
	assert.Equal(t, 14, boxes[1].Ribbon())
}

func TestParts(t *testing.T) {
	p1, err := day02.Part1(day02.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(101), p1)

	p2, err := day02.Part2(day02.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(48), p2)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"2x3", "2x3xq", "0x1x1"} {
		_, err := day02.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
