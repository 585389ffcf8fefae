// Package day02 solves "I Was Told There Would Be No Math".
package day02

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Box holds the dimensions of a present, sorted ascending.
type Box [3]int

// Parse reads one "LxWxH" box per line.
func Parse(input string) ([]Box, error) {
	lines := puzzle.Lines(input)
	boxes := make([]Box, 0, len(lines))
	for i, l := range lines {
		parts := strings.Split(l, "x")
		if len(parts) != 3 {
			return nil, puzzle.Malformed(i+1, l)
		}
		var b Box
		for j, p := range parts {
			n, err := puzzle.Atoi(p)
			if err != nil || n <= 0 {
				return nil, puzzle.Malformed(i+1, l)
			}
			b[j] = n
		}
		slices.Sort(b[:])
		boxes = append(boxes, b)
	}

	return boxes, nil
}

// Paper is the surface area plus the area of the smallest side.
func (b Box) Paper() int {
	return 2*(b[0]*b[1]+b[1]*b[2]+b[0]*b[2]) + b[0]*b[1]
}

// Ribbon is the smallest perimeter plus the volume for the bow.
func (b Box) Ribbon() int {
	return 2*(b[0]+b[1]) + b[0]*b[1]*b[2]
}

func total(input string, f func(Box) int) (puzzle.Answer, error) {
	boxes, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for _, b := range boxes {
		sum += f(b)
	}

	return puzzle.Int(sum), nil
}

// Part1 returns the total square feet of wrapping paper.
func Part1(input string) (puzzle.Answer, error) { return total(input, Box.Paper) }

// Part2 returns the total feet of ribbon.
func Part2(input string) (puzzle.Answer, error) { return total(input, Box.Ribbon) }
