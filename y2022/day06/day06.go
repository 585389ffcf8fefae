// Package day06 solves "Tuning Trouble": locating start-of-packet and
// start-of-message markers in a datastream.
package day06

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Marker returns the number of characters processed when the last size
// characters are pairwise distinct, and false if that never happens.
// Complexity: O(n) with a sliding count window.
func Marker(stream string, size int) (int, bool) {
	var counts [256]int
	dup := 0
	for i := 0; i < len(stream); i++ {
		counts[stream[i]]++
		if counts[stream[i]] == 2 {
			dup++
		}
		if i >= size {
			out := stream[i-size]
			counts[out]--
			if counts[out] == 1 {
				dup--
			}
		}
		if i+1 >= size && dup == 0 {
			return i + 1, true
		}
	}

	return 0, false
}

func solve(input string, size int) (puzzle.Answer, error) {
	stream := strings.TrimSpace(input)
	if strings.ContainsAny(stream, " \n\t") {
		return puzzle.Answer{}, puzzle.Malformedf("datastream spans several lines")
	}
	if n, ok := Marker(stream, size); ok {
		return puzzle.Int(n), nil
	}

	return puzzle.None(fmt.Sprintf("no window of %d distinct characters", size)), nil
}

// Part1 finds the start-of-packet marker (4 distinct characters).
func Part1(input string) (puzzle.Answer, error) { return solve(input, 4) }

// Part2 finds the start-of-message marker (14 distinct characters).
func Part2(input string) (puzzle.Answer, error) { return solve(input, 14) }
