// Package day09 solves "Rope Bridge": the tail of a rope follows the head
// across a plane, and we count the positions it visits.
package day09

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/point"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Pos is a knot position.
type Pos = point.Point[int32]

// Motion moves the head Steps times by Dir.
type Motion struct {
	Dir   Pos
	Steps int
}

var directions = map[string]Pos{
	"U": point.Up[int32](),
	"D": point.Down[int32](),
	"L": point.Left[int32](),
	"R": point.Right[int32](),
}

// Parse reads "<U|D|L|R> <steps>" motions.
func Parse(input string) ([]Motion, error) {
	lines := puzzle.Lines(input)
	out := make([]Motion, len(lines))
	for i, l := range lines {
		d, n, ok := strings.Cut(l, " ")
		dir, known := directions[d]
		steps, err := strconv.Atoi(n)
		if !ok || !known || err != nil || steps < 0 {
			return nil, puzzle.Malformed(i+1, l)
		}
		out[i] = Motion{Dir: dir, Steps: steps}
	}

	return out, nil
}

// Simulate runs a rope of knots knots (at least 2) and returns the number
// of distinct positions visited by its tail.
func Simulate(motions []Motion, knots int) int {
	rope := make([]Pos, knots)
	seen := map[Pos]struct{}{{}: {}}
	for _, m := range motions {
		for s := 0; s < m.Steps; s++ {
			rope[0] = rope[0].Add(m.Dir)
			for k := 1; k < knots; k++ {
				if rope[k].Touches(rope[k-1]) {
					break
				}
				rope[k] = rope[k].Step(rope[k-1])
			}
			seen[rope[knots-1]] = struct{}{}
		}
	}

	return len(seen)
}

func solve(input string, knots int) (puzzle.Answer, error) {
	motions, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Int(Simulate(motions, knots)), nil
}

// Part1 uses a rope of two knots.
func Part1(input string) (puzzle.Answer, error) { return solve(input, 2) }

// Part2 uses a rope of ten knots.
func Part2(input string) (puzzle.Answer, error) { return solve(input, 10) }
