// Package day06 solves "Probably a Fire Hazard" on a 1000×1000 light grid.
package day06

import (
	_ "embed"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Size is the side of the square light grid.
const Size = 1000

// Action is what an instruction does to each light in its rectangle.
type Action int

const (
	TurnOn Action = iota
	TurnOff
	Toggle
)

// Instruction applies Action to the inclusive rectangle X1..X2 × Y1..Y2.
// Corners are normalised so that X1 <= X2 and Y1 <= Y2.
type Instruction struct {
	Action         Action
	X1, Y1, X2, Y2 int
}

var instructionRE = regexp.MustCompile(`^(turn on|turn off|toggle) (\d+),(\d+) through (\d+),(\d+)$`)

// Parse reads one instruction per line.
func Parse(input string) ([]Instruction, error) {
	lines := puzzle.Lines(input)
	out := make([]Instruction, 0, len(lines))
	for i, l := range lines {
		m := instructionRE.FindStringSubmatch(l)
		if m == nil {
			return nil, puzzle.Malformed(i+1, l)
		}
		var c [4]int
		for j := range c {
			n, err := strconv.Atoi(m[j+2])
			if err != nil || n >= Size {
				return nil, puzzle.Malformed(i+1, l)
			}
			c[j] = n
		}
		in := Instruction{
			X1: min(c[0], c[2]), Y1: min(c[1], c[3]),
			X2: max(c[0], c[2]), Y2: max(c[1], c[3]),
		}
		switch m[1] {
		case "turn on":
			in.Action = TurnOn
		case "turn off":
			in.Action = TurnOff
		default:
			in.Action = Toggle
		}
		out = append(out, in)
	}

	return out, nil
}

// run applies every instruction to a fresh grid with step and returns the
// sum of all light values.
func run(instrs []Instruction, step func(Action, int) int) int {
	grid := make([]int, Size*Size)
	for _, in := range instrs {
		for y := in.Y1; y <= in.Y2; y++ {
			row := grid[y*Size : (y+1)*Size]
			for x := in.X1; x <= in.X2; x++ {
				row[x] = step(in.Action, row[x])
			}
		}
	}
	total := 0
	for _, v := range grid {
		total += v
	}

	return total
}

// Switch treats a light as on (1) or off (0).
func Switch(a Action, v int) int {
	switch a {
	case TurnOn:
		return 1
	case TurnOff:
		return 0
	}

	return 1 - v
}

// Dimmer treats a light as a brightness level that never drops below zero.
func Dimmer(a Action, v int) int {
	switch a {
	case TurnOn:
		return v + 1
	case TurnOff:
		return max(v-1, 0)
	}

	return v + 2
}

func solve(input string, step func(Action, int) int) (puzzle.Answer, error) {
	instrs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Int(run(instrs, step)), nil
}

// Part1 counts the lights left on.
func Part1(input string) (puzzle.Answer, error) { return solve(input, Switch) }

// Part2 returns the total brightness.
func Part2(input string) (puzzle.Answer, error) { return solve(input, Dimmer) }
