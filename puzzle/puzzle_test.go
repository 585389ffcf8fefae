package puzzle_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
)

func TestAnswer(t *testing.T) {
	cases := []struct {
		name string
		a    puzzle.Answer
		want string
		ok   bool
	}{
		{"Int", puzzle.Int(-42), "-42", true},
		{"Text", puzzle.Text("CMZ"), "CMZ", true},
		{"None", puzzle.None("no path"), "no result (no path)", false},
		{"Zero", puzzle.Answer{}, "no result", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.String())
			assert.Equal(t, tc.ok, tc.a.OK())
		})
	}

	n, ok := puzzle.Int(7).Value()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = puzzle.Text("7").Value()
	assert.False(t, ok)
	assert.Equal(t, "no path", puzzle.None("no path").Reason())
}

func TestDay(t *testing.T) {
	d := puzzle.Day{Year: 2022, Day: 9, Part1: func(string) (puzzle.Answer, error) { return puzzle.Int(1), nil }}
	assert.Equal(t, "2022/09", d.Key())
	assert.NotNil(t, d.Part(1))
	assert.Nil(t, d.Part(2))
	assert.Nil(t, d.Part(3))
}

func TestLinesAndBlocks(t *testing.T) {
	assert.Nil(t, puzzle.Lines(""))
	assert.Nil(t, puzzle.Lines("\n\n"))
	assert.Equal(t, []string{"a", "", "b"}, puzzle.Lines("a\r\n\r\nb\n"))

	got := puzzle.Blocks("1000\n2000\n\n4000\n\n\n5000\n6000\n")
	want := [][]string{{"1000", "2000"}, {"4000"}, {"5000", "6000"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestAtoi(t *testing.T) {
	n, err := puzzle.Atoi(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = puzzle.Atoi("x")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	ns, err := puzzle.Ints("7 6  4 2 1")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 4, 2, 1}, ns)

	_, err = puzzle.Ints("1 two")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	assert.ErrorIs(t, puzzle.Malformed(3, "oops"), puzzle.ErrMalformedInput)
	assert.EqualError(t, puzzle.Malformed(3, "oops"), `puzzle: malformed input: line 3: "oops"`)
	assert.ErrorIs(t, puzzle.Malformedf("bad %d", 1), puzzle.ErrMalformedInput)
}
