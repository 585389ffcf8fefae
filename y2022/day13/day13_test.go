package day13_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2022/day13"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b    string
		ordered bool
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", true},
		{"[[1],[2,3,4]]", "[[1],4]", true},
		{"[9]", "[[8,7,6]]", false},
		{"[[4,4],4,4]", "[[4,4],4,4,4]", true},
		{"[7,7,7,7]", "[7,7,7]", false},
		{"[]", "[3]", true},
		{"[[[]]]", "[[]]", false},
		{"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", false},
	}
	for _, tc := range cases {
		a, err := day13.ParsePacket(tc.a)
		require.NoError(t, err)
		b, err := day13.ParsePacket(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.ordered, day13.Compare(a, b) < 0, "%s vs %s", tc.a, tc.b)
		assert.Equal(t, !tc.ordered, day13.Compare(b, a) < 0, "%s vs %s", tc.b, tc.a)
	}
}

func TestPacketString(t *testing.T) {
	for _, s := range []string{"[]", "[[[]]]", "[1,[2,[3,[4,[5,6,7]]]],8,9]"} {
		p, err := day13.ParsePacket(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestParts(t *testing.T) {
	p1, err := day13.Part1(day13.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(13), p1)

	p2, err := day13.Part2(day13.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(140), p2)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"[1,2\n[3]", "[1]\n[2]\n[3]", "5\n[1]", `["a"]` + "\n[1]"} {
		_, err := day13.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}

func TestNullRejected(t *testing.T) {
	for _, in := range []string{"[null]\n[1]", "[[1],[null,2]]\n[1]", "null\n[1]"} {
		_, err := day13.Part1(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
