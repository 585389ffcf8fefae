package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2015/day05"
)

func TestRules(t *testing.T) {
	assert.True(t, day05.ThreeVowels("aei"))
	assert.True(t, day05.ThreeVowels("xazegov"))
	assert.False(t, day05.ThreeVowels("dvszwmarrgswjxmb"))

	assert.True(t, day05.DoubleLetter("abcdde"))
	assert.True(t, day05.DoubleLetter("aabbccdd"))
	assert.False(t, day05.DoubleLetter("jchzalrnumimnmhp"))

	assert.False(t, day05.NoForbidden("haegwjzuvuyypxyu"))
	assert.True(t, day05.NoForbidden("ugknbfddgicrmopn"))

	assert.True(t, day05.RepeatedPair("xyxy"))
	assert.True(t, day05.RepeatedPair("aabcdefgaa"))
	assert.False(t, day05.RepeatedPair("aaa"))

	assert.True(t, day05.SandwichRepeat("xyx"))
	assert.True(t, day05.SandwichRepeat("abcdefeghi"))
	assert.True(t, day05.SandwichRepeat("ieodomkazucvgmuy"))
	assert.False(t, day05.SandwichRepeat("aabbcc"))
	assert.True(t, day05.RepeatedPair("uurcxstgmygtbstg"))
	assert.False(t, day05.SandwichRepeat("uurcxstgmygtbstg"))
}

func TestNice(t *testing.T) {
	part1 := []day05.Rule{day05.ThreeVowels, day05.DoubleLetter, day05.NoForbidden}
	assert.True(t, day05.Nice("ugknbfddgicrmopn", part1...))
	assert.True(t, day05.Nice("aaa", part1...))
	for _, s := range []string{"jchzalrnumimnmhp", "haegwjzuvuyypxyu", "dvszwmarrgswjxmb"} {
		assert.False(t, day05.Nice(s, part1...), s)
	}

	part2 := []day05.Rule{day05.RepeatedPair, day05.SandwichRepeat}
	assert.True(t, day05.Nice("qjhvhtzxzqqjkmpb", part2...))
	assert.True(t, day05.Nice("xxyxx", part2...))
	assert.False(t, day05.Nice("uurcxstgmygtbstg", part2...))
	assert.False(t, day05.Nice("ieodomkazucvgmuy", part2...))
}

func TestParts(t *testing.T) {
	p1, err := day05.Part1(day05.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(2), p1)

	p2, err := day05.Part2(day05.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(2), p2)

	_, err = day05.Part1("abc\nAbc")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
