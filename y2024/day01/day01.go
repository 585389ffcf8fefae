// Package day01 solves "Historian Hysteria".
package day01

import (
	_ "embed"
	"slices"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Parse splits the two location-ID columns.
func Parse(input string) (left, right []int, err error) {
	for i, l := range puzzle.Lines(input) {
		ns, perr := puzzle.Ints(l)
		if perr != nil || len(ns) != 2 {
			return nil, nil, puzzle.Malformed(i+1, l)
		}
		left = append(left, ns[0])
		right = append(right, ns[1])
	}

	return left, right, nil
}

// Part1 pairs the sorted lists and sums the distances.
func Part1(input string) (puzzle.Answer, error) {
	left, right, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	slices.Sort(left)
	slices.Sort(right)
	sum := 0
	for i := range left {
		d := left[i] - right[i]
		sum += max(d, -d)
	}

	return puzzle.Int(sum), nil
}

// Part2 returns the similarity score: each left number times its count on the right.
func Part2(input string) (puzzle.Answer, error) {
	left, right, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}
	sum := 0
	for _, l := range left {
		sum += l * counts[l]
	}

	return puzzle.Int(sum), nil
}
