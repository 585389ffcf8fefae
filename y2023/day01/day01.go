// Package day01 solves "Trebuchet?!": calibration values from the first and
// last digit on each line, optionally spelled out.
package day01

import (
	_ "embed"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled digits count
// only when words is set; overlapping words such as "eightwo" both match.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return d + 1, true
		}
	}

	return 0, false
}

// Calibration combines the first and last digit of line into a two-digit number.
func Calibration(line string, words bool) (int, bool) {
	first, last, found := 0, 0, false
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}

	return first*10 + last, found
}

func solve(input string, words bool) (puzzle.Answer, error) {
	sum := 0
	for i, l := range puzzle.Lines(input) {
		v, ok := Calibration(l, words)
		if !ok {
			return puzzle.Answer{}, puzzle.Malformed(i+1, l)
		}
		sum += v
	}

	return puzzle.Int(sum), nil
}

// Part1 uses numeric digits only.
func Part1(input string) (puzzle.Answer, error) { return solve(input, false) }

// Part2 also accepts digits spelled with letters.
func Part2(input string) (puzzle.Answer, error) { return solve(input, true) }
