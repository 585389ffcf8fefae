// Package day01 solves "Not Quite Lisp": Santa follows parentheses up and
// down floors.
package day01

import (
	_ "embed"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Parse converts the instructions into floor deltas (+1 for '(', -1 for ')').
func Parse(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	moves := make([]int, len(input))
	for i, c := range input {
		switch c {
		case '(':
			moves[i] = 1
		case ')':
			moves[i] = -1
		default:
			return nil, puzzle.Malformedf("unexpected %q at position %d", c, i+1)
		}
	}

	return moves, nil
}

// Part1 returns the floor reached after all instructions.
func Part1(input string) (puzzle.Answer, error) {
	moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	floor := 0
	for _, m := range moves {
		floor += m
	}

	return puzzle.Int(floor), nil
}

// Part2 returns the 1-based position of the first instruction that enters
// the basement (floor -1).
func Part2(input string) (puzzle.Answer, error) {
	moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	floor := 0
	for i, m := range moves {
		floor += m
		if floor == -1 {
			return puzzle.Int(i + 1), nil
		}
	}

	return puzzle.None("never enters the basement"), nil
}
