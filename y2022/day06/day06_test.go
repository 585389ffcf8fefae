package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2022/day06"
)

func TestMarker(t *testing.T) {
	cases := []struct {
		stream      string
		packet, msg int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		n, ok := day06.Marker(tc.stream, 4)
		assert.True(t, ok)
		assert.Equal(t, tc.packet, n, tc.stream)

		n, ok = day06.Marker(tc.stream, 14)
		assert.True(t, ok)
		assert.Equal(t, tc.msg, n, tc.stream)
	}
}

func TestParts(t *testing.T) {
	p1, err := day06.Part1(day06.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(7), p1)

	p2, err := day06.Part2(day06.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(19), p2)
}

func TestNoMarker(t *testing.T) {
	got, err := day06.Part1("aabbaabb")
	require.NoError(t, err)
	assert.False(t, got.OK())
	assert.Equal(t, "no result (no window of 4 distinct characters)", got.String())

	_, err = day06.Part1("abcd\nefgh")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
