// Package day03 solves "Rucksack Reorganization".
package day03

import (
	_ "embed"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Priority maps a–z to 1–26 and A–Z to 27–52; anything else is 0.
func Priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}

	return 0
}

// itemSet is a bitmask of priorities 1..52.
type itemSet uint64

func items(s string) itemSet {
	var set itemSet
	for i := 0; i < len(s); i++ {
		set |= 1 << Priority(s[i])
	}

	return set
}

// only returns the single priority in set, or 0.
func (s itemSet) only() int {
	if s == 0 || s&(s-1) != 0 {
		return 0
	}
	p := 0
	for s > 1 {
		s >>= 1
		p++
	}

	return p
}

// Parse validates that every rucksack is an even-length run of letters.
func Parse(input string) ([]string, error) {
	lines := puzzle.Lines(input)
	for i, l := range lines {
		if len(l) == 0 || len(l)%2 != 0 {
			return nil, puzzle.Malformed(i+1, l)
		}
		for j := 0; j < len(l); j++ {
			if Priority(l[j]) == 0 {
				return nil, puzzle.Malformed(i+1, l)
			}
		}
	}

	return lines, nil
}

// Part1 sums the priorities of the item shared by both compartments.
func Part1(input string) (puzzle.Answer, error) {
	sacks, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for i, s := range sacks {
		half := len(s) / 2
		p := (items(s[:half]) & items(s[half:])).only()
		if p == 0 {
			return puzzle.Answer{}, puzzle.Malformedf("line %d: compartments must share exactly one item", i+1)
		}
		sum += p
	}

	return puzzle.Int(sum), nil
}

// Part2 sums the badge priorities of each group of three elves.
func Part2(input string) (puzzle.Answer, error) {
	sacks, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(sacks)%3 != 0 {
		return puzzle.Answer{}, puzzle.Malformedf("%d rucksacks do not form groups of three", len(sacks))
	}
	sum := 0
	for i := 0; i < len(sacks); i += 3 {
		p := (items(sacks[i]) & items(sacks[i+1]) & items(sacks[i+2])).only()
		if p == 0 {
			return puzzle.Answer{}, puzzle.Malformedf("group at line %d has no single badge", i+1)
		}
		sum += p
	}

	return puzzle.Int(sum), nil
}
