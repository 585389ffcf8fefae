// Package day03 solves "Perfectly Spherical Houses in a Vacuum".
//
// Moves are read from ^ v < > and applied to an infinite 2D grid of houses.
// In part 2 Santa and Robo-Santa take turns reading the instructions.
package day03

import (
	_ "embed"
	"strings"

	"github.com/katalvlaran/aoc/point"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Parse turns the instruction string into unit moves.
func Parse(input string) ([]point.Point[int], error) {
	input = strings.TrimSpace(input)
	moves := make([]point.Point[int], 0, len(input))
	for i, c := range input {
		switch c {
		case '^':
			moves = append(moves, point.Up[int]())
		case 'v':
			moves = append(moves, point.Down[int]())
		case '<':
			moves = append(moves, point.Left[int]())
		case '>':
			moves = append(moves, point.Right[int]())
		default:
			return nil, puzzle.Malformedf("unexpected %q at position %d", c, i+1)
		}
	}

	return moves, nil
}

// visit delivers presents with the given number of alternating carriers and
// returns the number of distinct houses that received at least one.
func visit(moves []point.Point[int], carriers int) int {
	pos := make([]point.Point[int], carriers)
	seen := map[point.Point[int]]struct{}{{}: {}}
	for i, m := range moves {
		c := i % carriers
		pos[c] = pos[c].Add(m)
		seen[pos[c]] = struct{}{}
	}

	return len(seen)
}

// Part1 counts the houses Santa visits alone.
func Part1(input string) (puzzle.Answer, error) {
	moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Int(visit(moves, 1)), nil
}

// Part2 counts the houses visited by Santa and Robo-Santa together.
func Part2(input string) (puzzle.Answer, error) {
	moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Int(visit(moves, 2)), nil
}
