// Package day10 solves "Cathode-Ray Tube": a two-instruction CPU drives a
// 40×6 sprite display.
package day10

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

const (
	crtWide = 40
	crtHigh = 6
)

// Instruction is a noop (Cycles 1) or an addx (Cycles 2).
type Instruction struct {
	Cycles int
	Delta  int
}

// Parse reads "noop" and "addx <v>" lines.
func Parse(input string) ([]Instruction, error) {
	lines := puzzle.Lines(input)
	out := make([]Instruction, len(lines))
	for i, l := range lines {
		if l == "noop" {
			out[i] = Instruction{Cycles: 1}
			continue
		}
		v, ok := strings.CutPrefix(l, "addx ")
		n, err := strconv.Atoi(v)
		if !ok || err != nil {
			return nil, puzzle.Malformed(i+1, l)
		}
		out[i] = Instruction{Cycles: 2, Delta: n}
	}

	return out, nil
}

// Trace returns the value of register X during each cycle; index 0 is
// cycle 1. X starts at 1 and an addx takes effect after its second cycle.
func Trace(prog []Instruction) []int {
	x := 1
	var out []int
	for _, in := range prog {
		for c := 0; c < in.Cycles; c++ {
			out = append(out, x)
		}
		x += in.Delta
	}

	return out
}

// Part1 sums the signal strengths during cycles 20, 60, … 220.
func Part1(input string) (puzzle.Answer, error) {
	prog, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	xs := Trace(prog)
	sum := 0
	for cycle := 20; cycle <= 220 && cycle <= len(xs); cycle += crtWide {
		sum += cycle * xs[cycle-1]
	}

	return puzzle.Int(sum), nil
}

// Render draws the CRT: a pixel is lit when the 3-wide sprite centred on
// X covers the column being drawn.
func Render(xs []int) string {
	rows := make([]string, crtHigh)
	for r := range rows {
		line := []byte(strings.Repeat(".", crtWide))
		for col := 0; col < crtWide; col++ {
			i := r*crtWide + col
			if i < len(xs) && xs[i] >= col-1 && xs[i] <= col+1 {
				line[col] = '#'
			}
		}
		rows[r] = string(line)
	}

	return strings.Join(rows, "\n")
}

// Part2 returns the rendered CRT picture.
func Part2(input string) (puzzle.Answer, error) {
	prog, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Text(Render(Trace(prog))), nil
}
