// Package day02 solves "Red-Nosed Reports".
package day02

import (
	_ "embed"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Safe reports whether levels are strictly monotonic with steps of 1 to 3.
func Safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	dir := 1
	if levels[1] < levels[0] {
		dir = -1
	}
	for i := 1; i < len(levels); i++ {
		d := (levels[i] - levels[i-1]) * dir
		if d < 1 || d > 3 {
			return false
		}
	}

	return true
}

// Dampened reports whether removing at most one level makes the report safe.
func Dampened(levels []int) bool {
	if Safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = append(buf[:0], levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if Safe(buf) {
			return true
		}
	}

	return false
}

// Parse reads one report of whitespace-separated levels per line.
func Parse(input string) ([][]int, error) {
	lines := puzzle.Lines(input)
	reports := make([][]int, len(lines))
	for i, l := range lines {
		ns, err := puzzle.Ints(l)
		if err != nil || len(ns) == 0 {
			return nil, puzzle.Malformed(i+1, l)
		}
		reports[i] = ns
	}

	return reports, nil
}

func count(input string, ok func([]int) bool) (puzzle.Answer, error) {
	reports, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n := 0
	for _, r := range reports {
		if ok(r) {
			n++
		}
	}

	return puzzle.Int(n), nil
}

// Part1 counts safe reports.
func Part1(input string) (puzzle.Answer, error) { return count(input, Safe) }

// Part2 counts reports that are safe with the Problem Dampener.
func Part2(input string) (puzzle.Answer, error) { return count(input, Dampened) }
