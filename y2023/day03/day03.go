// Package day03 solves "Gear Ratios" on an engine schematic grid.
package day03

import (
	_ "embed"
	"fmt"

	"github.com/katalvlaran/aoc/gridgraph"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Number is a horizontal run of digits and the symbols touching it.
type Number struct {
	Value   int
	Symbols []gridgraph.Cell
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

// Parse finds every number in the schematic together with the distinct
// symbols adjacent to it, diagonals included.
func Parse(input string) ([]Number, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	var nums []Number
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !isDigit(g.At(x, y)) {
				continue
			}
			n := Number{}
			seen := map[gridgraph.Cell]bool{}
			for ; x < g.Width && isDigit(g.At(x, y)); x++ {
				n.Value = n.Value*10 + int(g.At(x, y)-'0')
				for _, c := range g.Neighbors(x, y, gridgraph.Conn8) {
					if isSymbol(c.Value) && !seen[c] {
						seen[c] = true
						n.Symbols = append(n.Symbols, c)
					}
				}
			}
			nums = append(nums, n)
		}
	}

	return nums, nil
}

// Part1 sums every number adjacent to a symbol.
func Part1(input string) (puzzle.Answer, error) {
	nums, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for _, n := range nums {
		if len(n.Symbols) > 0 {
			sum += n.Value
		}
	}

	return puzzle.Int(sum), nil
}

// Part2 sums the gear ratios: the product of the two numbers around each
// '*' that touches exactly two numbers.
func Part2(input string) (puzzle.Answer, error) {
	nums, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	stars := map[gridgraph.Cell][]int{}
	var order []gridgraph.Cell
	for _, n := range nums {
		for _, s := range n.Symbols {
			if s.Value != '*' {
				continue
			}
			if _, ok := stars[s]; !ok {
				order = append(order, s)
			}
			stars[s] = append(stars[s], n.Value)
		}
	}
	sum := 0
	for _, s := range order {
		if parts := stars[s]; len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}

	return puzzle.Int(sum), nil
}
