package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/aoc/puzzle"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{logger: zaptest.NewLogger(t)}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRun_SingleDay(t *testing.T) {
	out, err := execute(t, "run", "2015", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Not Quite Lisp")
	assert.Contains(t, out, "2015 Day 01 - Part 1:")
	assert.Contains(t, out, "-1")
	assert.Contains(t, out, "2015 Day 01 - Part 2:")
}

func TestRun_OnlyPart(t *testing.T) {
	out, err := execute(t, "run", "2015", "1", "--part", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "Part 1:")
	assert.Contains(t, out, "Part 2:")
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("(((\n"), 0o600))

	out, err := execute(t, "run", "2015", "1", "--input", path, "--part", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Part 1: 3")
}

func TestRun_MalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("(x)"), 0o600))

	_, err := execute(t, "run", "2015", "1", "--input", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"BadYear", []string{"run", "twenty"}, "invalid year"},
		{"UnknownYear", []string{"run", "1999"}, "no solutions"},
		{"UnknownDay", []string{"run", "2022", "15"}, "no solution"},
		{"BadPart", []string{"run", "2015", "1", "--part", "3"}, "--part"},
		{"InputNeedsDay", []string{"run", "2015", "--input", "x.txt"}, "single day"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Proboscidea Volcanium")
	assert.Contains(t, out, "Red-Nosed Reports")
}

func TestVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("solves every day")
	}
	out, err := execute(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "2022/16")
	assert.NotContains(t, out, "FAIL")
}

func TestFormatAnswer(t *testing.T) {
	assert.Contains(t, formatAnswer(puzzle.Int(42)), "42")
	assert.Contains(t, formatAnswer(puzzle.None("no route")), "no route")

	multi := formatAnswer(puzzle.Text("##..\n..##"))
	assert.True(t, strings.HasPrefix(multi, "\n    ##.."))
	assert.Contains(t, multi, "\n    ..##")
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1", "longer"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "|")
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.Contains(t, lines[2], "longer")
}
