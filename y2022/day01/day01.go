// Package day01 solves "Calorie Counting".
package day01

import (
	_ "embed"
	"slices"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Parse returns the calorie total carried by each elf, in input order.
func Parse(input string) ([]int, error) {
	blocks := puzzle.Blocks(input)
	totals := make([]int, len(blocks))
	for i, b := range blocks {
		for _, l := range b {
			n, err := puzzle.Atoi(l)
			if err != nil {
				return nil, err
			}
			totals[i] += n
		}
	}

	return totals, nil
}

// topSum returns the sum of the n largest totals.
func topSum(input string, n int) (puzzle.Answer, error) {
	totals, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(totals) == 0 {
		return puzzle.None("no elves"), nil
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	sum := 0
	for _, t := range totals[:min(n, len(totals))] {
		sum += t
	}

	return puzzle.Int(sum), nil
}

// Part1 returns the calories carried by the best-stocked elf.
func Part1(input string) (puzzle.Answer, error) { return topSum(input, 1) }

// Part2 returns the calories carried by the top three elves.
func Part2(input string) (puzzle.Answer, error) { return topSum(input, 3) }
