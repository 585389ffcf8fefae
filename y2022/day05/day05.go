// Package day05 solves "Supply Stacks": crates are moved between stacks by
// a crane, one at a time (CrateMover 9000) or in batches (CrateMover 9001).
package day05

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Move transfers Count crates from stack From to stack To (0-based).
type Move struct {
	Count, From, To int
}

// Stacks holds each stack bottom-first; the top crate is the last byte.
type Stacks [][]byte

// Clone returns a deep copy so a simulation never touches parsed state.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = slices.Clone(st)
	}

	return out
}

// Tops returns the top crate of every non-empty stack.
func (s Stacks) Tops() string {
	var sb strings.Builder
	for _, st := range s {
		if len(st) > 0 {
			sb.WriteByte(st[len(st)-1])
		}
	}

	return sb.String()
}

// Parse splits the drawing from the procedure. The number of stacks is
// read from the label line under the drawing.
func Parse(input string) (Stacks, []Move, error) {
	input = strings.ReplaceAll(input, "\r", "")
	drawing, procedure, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, nil, puzzle.Malformedf("missing blank line between drawing and moves")
	}
	rows := strings.Split(drawing, "\n")
	labels := strings.Fields(rows[len(rows)-1])
	if len(labels) == 0 {
		return nil, nil, puzzle.Malformedf("missing stack labels")
	}
	stacks := make(Stacks, len(labels))
	for r := len(rows) - 2; r >= 0; r-- {
		row := rows[r]
		for i := range stacks {
			col := 1 + 4*i
			if col >= len(row) || row[col] == ' ' {
				continue
			}
			if row[col-1] != '[' || row[col] < 'A' || row[col] > 'Z' {
				return nil, nil, puzzle.Malformed(r+1, row)
			}
			stacks[i] = append(stacks[i], row[col])
		}
	}

	var moves []Move
	for i, l := range puzzle.Lines(procedure) {
		var m Move
		n, err := fmt.Sscanf(l, "move %d from %d to %d", &m.Count, &m.From, &m.To)
		if err != nil || n != 3 || m.From < 1 || m.From > len(stacks) || m.To < 1 || m.To > len(stacks) {
			return nil, nil, puzzle.Malformed(len(rows)+2+i, l)
		}
		m.From--
		m.To--
		moves = append(moves, m)
	}

	return stacks, moves, nil
}

// Run applies moves to a copy of stacks. With batch set, crates moved
// together keep their order.
func Run(stacks Stacks, moves []Move, batch bool) (Stacks, error) {
	s := stacks.Clone()
	for i, m := range moves {
		from := s[m.From]
		if m.Count > len(from) {
			return nil, puzzle.Malformedf("move %d takes %d crates from a stack of %d", i+1, m.Count, len(from))
		}
		lifted := slices.Clone(from[len(from)-m.Count:])
		if !batch {
			slices.Reverse(lifted)
		}
		s[m.From] = from[:len(from)-m.Count]
		s[m.To] = append(s[m.To], lifted...)
	}

	return s, nil
}

func solve(input string, batch bool) (puzzle.Answer, error) {
	stacks, moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	final, err := Run(stacks, moves, batch)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Text(final.Tops()), nil
}

// Part1 uses the CrateMover 9000.
func Part1(input string) (puzzle.Answer, error) { return solve(input, false) }

// Part2 uses the CrateMover 9001.
func Part2(input string) (puzzle.Answer, error) { return solve(input, true) }
