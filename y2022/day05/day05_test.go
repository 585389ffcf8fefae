package day05_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/y2022/day05"
)

func TestParse(t *testing.T) {
	stacks, moves, err := day05.Parse(day05.Input)
	require.NoError(t, err)

	want := day05.Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}
	if diff := cmp.Diff(want, stacks); diff != "" {
		t.Errorf("stacks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, day05.Move{Count: 1, From: 1, To: 0}, moves[0])
	assert.Len(t, moves, 4)
	assert.Equal(t, "NDP", stacks.Tops())
}

func TestParts(t *testing.T) {
	p1, err := day05.Part1(day05.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Text("CMZ"), p1)

	p2, err := day05.Part2(day05.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Text("MCD"), p2)
}

func TestRunLeavesInputUntouched(t *testing.T) {
	stacks, moves, err := day05.Parse(day05.Input)
	require.NoError(t, err)
	_, err = day05.Run(stacks, moves, true)
	require.NoError(t, err)
	assert.Equal(t, "NDP", stacks.Tops())
}

func TestMalformed(t *testing.T) {
	cases := map[string]string{
		"no blank":   "[A]\n 1 \nmove 1 from 1 to 1",
		"bad move":   "[A]\n 1 \n\nmove one from 1 to 1",
		"bad stack":  "[A]\n 1 \n\nmove 1 from 2 to 1",
		"over-empty": "[A]\n 1 \n\nmove 2 from 1 to 1",
	}
	for name, in := range cases {
		_, err := day05.Part1(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, name)
	}
}
