// Package day08 solves "Treetop Tree House" on a grid of tree heights.
package day08

import (
	_ "embed"
	"fmt"

	"github.com/katalvlaran/aoc/gridgraph"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Parse reads the height map; every cell must be a digit.
func Parse(input string) (*gridgraph.Grid, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := g.At(x, y); c < '0' || c > '9' {
				return nil, puzzle.Malformedf("row %d col %d: %q is not a height", y+1, x+1, c)
			}
		}
	}

	return g, nil
}

// Visible reports whether the tree at (x,y) can be seen from outside the grid.
func Visible(g *gridgraph.Grid, x, y int) bool {
	h := g.At(x, y)
	for _, d := range gridgraph.Conn4.Offsets() {
		hidden := false
		for _, c := range g.Ray(x, y, d[0], d[1]) {
			if c.Value >= h {
				hidden = true
				break
			}
		}
		if !hidden {
			return true
		}
	}

	return false
}

// ScenicScore multiplies the viewing distances in the four directions.
// A view stops at the first tree at least as tall, which is counted.
func ScenicScore(g *gridgraph.Grid, x, y int) int {
	h := g.At(x, y)
	score := 1
	for _, d := range gridgraph.Conn4.Offsets() {
		n := 0
		for _, c := range g.Ray(x, y, d[0], d[1]) {
			n++
			if c.Value >= h {
				break
			}
		}
		score *= n
	}

	return score
}

// Part1 counts the trees visible from outside the grid.
func Part1(input string) (puzzle.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if Visible(g, x, y) {
				n++
			}
		}
	}

	return puzzle.Int(n), nil
}

// Part2 returns the highest scenic score.
func Part2(input string) (puzzle.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	best := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			best = max(best, ScenicScore(g, x, y))
		}
	}

	return puzzle.Int(best), nil
}
