// Package day04 solves "Camp Cleanup".
package day04

import (
	_ "embed"
	"fmt"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Range is an inclusive section assignment.
type Range struct{ Lo, Hi int }

// Contains reports whether r fully contains o.
func (r Range) Contains(o Range) bool { return r.Lo <= o.Lo && o.Hi <= r.Hi }

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool { return r.Lo <= o.Hi && o.Lo <= r.Hi }

// Pair is the two assignments of one line.
type Pair [2]Range

// Parse reads "a-b,c-d" pairs.
func Parse(input string) ([]Pair, error) {
	lines := puzzle.Lines(input)
	out := make([]Pair, len(lines))
	for i, l := range lines {
		var p Pair
		n, err := fmt.Sscanf(l, "%d-%d,%d-%d", &p[0].Lo, &p[0].Hi, &p[1].Lo, &p[1].Hi)
		if err != nil || n != 4 || p[0].Lo > p[0].Hi || p[1].Lo > p[1].Hi {
			return nil, puzzle.Malformed(i+1, l)
		}
		out[i] = p
	}

	return out, nil
}

func count(input string, pred func(Pair) bool) (puzzle.Answer, error) {
	pairs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n := 0
	for _, p := range pairs {
		if pred(p) {
			n++
		}
	}

	return puzzle.Int(n), nil
}

// Part1 counts pairs where one range fully contains the other.
func Part1(input string) (puzzle.Answer, error) {
	return count(input, func(p Pair) bool { return p[0].Contains(p[1]) || p[1].Contains(p[0]) })
}

// Part2 counts overlapping pairs.
func Part2(input string) (puzzle.Answer, error) {
	return count(input, func(p Pair) bool { return p[0].Overlaps(p[1]) })
}
