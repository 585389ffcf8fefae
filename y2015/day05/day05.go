// Package day05 solves "Doesn't He Have Intern-Elves For This?": sorting
// strings into naughty and nice under two rule sets.
package day05

import (
	_ "embed"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Rule is a single niceness test.
type Rule func(s string) bool

var forbidden = []string{"ab", "cd", "pq", "xy"}

// ThreeVowels reports whether s holds at least three vowels from aeiou.
func ThreeVowels(s string) bool {
	n := 0
	for _, c := range s {
		if strings.ContainsRune("aeiou", c) {
			n++
		}
	}

	return n >= 3
}

// DoubleLetter reports whether some letter appears twice in a row.
func DoubleLetter(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return true
		}
	}

	return false
}

// NoForbidden reports whether s avoids ab, cd, pq and xy.
func NoForbidden(s string) bool {
	for _, f := range forbidden {
		if strings.Contains(s, f) {
			return false
		}
	}

	return true
}

// RepeatedPair reports whether a pair of letters appears at least twice
// without overlapping.
func RepeatedPair(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if strings.Contains(s[i+2:], s[i:i+2]) {
			return true
		}
	}

	return false
}

// SandwichRepeat reports whether a letter repeats with exactly one letter
// between, as in xyx.
func SandwichRepeat(s string) bool {
	for i := 2; i < len(s); i++ {
		if s[i] == s[i-2] {
			return true
		}
	}

	return false
}

// Nice reports whether s satisfies every rule.
func Nice(s string, rules ...Rule) bool {
	for _, r := range rules {
		if !r(s) {
			return false
		}
	}

	return true
}

// Parse returns one lowercase word per line.
func Parse(input string) ([]string, error) {
	lines := puzzle.Lines(input)
	for i, l := range lines {
		if l == "" || strings.IndexFunc(l, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
			return nil, puzzle.Malformed(i+1, l)
		}
	}

	return lines, nil
}

func count(input string, rules ...Rule) (puzzle.Answer, error) {
	words, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n := 0
	for _, w := range words {
		if Nice(w, rules...) {
			n++
		}
	}

	return puzzle.Int(n), nil
}

// Part1 counts nice strings under the vowel, double-letter and forbidden-pair rules.
func Part1(input string) (puzzle.Answer, error) {
	return count(input, ThreeVowels, DoubleLetter, NoForbidden)
}

// Part2 counts nice strings under the repeated-pair and sandwich rules.
func Part2(input string) (puzzle.Answer, error) {
	return count(input, RepeatedPair, SandwichRepeat)
}
