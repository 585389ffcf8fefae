package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2023/day01"
)

const spelled = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

func TestCalibration(t *testing.T) {
	v, ok := day01.Calibration("treb7uchet", false)
	assert.True(t, ok)
	assert.Equal(t, 77, v)

	v, ok = day01.Calibration("eightwo", true)
	assert.True(t, ok)
	assert.Equal(t, 82, v)

	_, ok = day01.Calibration("eightwo", false)
	assert.False(t, ok)
}

func TestParts(t *testing.T) {
	p1, err := day01.Part1(day01.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(142), p1)

	p2, err := day01.Part2(day01.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(142), p2)

	p2, err = day01.Part2(spelled)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Int(281), p2)
}

func TestMalformed(t *testing.T) {
	_, err := day01.Part1(spelled)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
