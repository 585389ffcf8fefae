// Package day02 solves "Cube Conundrum".
package day02

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Set counts cubes by colour.
type Set struct {
	Red, Green, Blue int
}

// Within reports whether every colour of s fits in limit.
func (s Set) Within(limit Set) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// Power multiplies the three colour counts.
func (s Set) Power() int { return s.Red * s.Green * s.Blue }

// Game is one game's reveals.
type Game struct {
	ID      int
	Reveals []Set
}

// Minimum is the smallest bag that could have produced every reveal.
func (g Game) Minimum() Set {
	var m Set
	for _, r := range g.Reveals {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}

	return m
}

// Bag is the part 1 bag content.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

// Parse reads "Game N: 3 blue, 4 red; ..." lines.
func Parse(input string) ([]Game, error) {
	lines := puzzle.Lines(input)
	games := make([]Game, len(lines))
	for i, l := range lines {
		head, body, ok := strings.Cut(l, ": ")
		if !ok {
			return nil, puzzle.Malformed(i+1, l)
		}
		var g Game
		if _, err := fmt.Sscanf(head, "Game %d", &g.ID); err != nil {
			return nil, puzzle.Malformed(i+1, l)
		}
		for _, reveal := range strings.Split(body, "; ") {
			var s Set
			for _, part := range strings.Split(reveal, ", ") {
				var (
					n     int
					color string
				)
				if _, err := fmt.Sscanf(part, "%d %s", &n, &color); err != nil {
					return nil, puzzle.Malformed(i+1, l)
				}
				switch color {
				case "red":
					s.Red += n
				case "green":
					s.Green += n
				case "blue":
					s.Blue += n
				default:
					return nil, puzzle.Malformed(i+1, l)
				}
			}
			g.Reveals = append(g.Reveals, s)
		}
		games[i] = g
	}

	return games, nil
}

// Part1 sums the IDs of games possible with Bag.
func Part1(input string) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for _, g := range games {
		if g.Minimum().Within(Bag) {
			sum += g.ID
		}
	}

	return puzzle.Int(sum), nil
}

// Part2 sums the powers of each game's minimum set.
func Part2(input string) (puzzle.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}

	return puzzle.Int(sum), nil
}
