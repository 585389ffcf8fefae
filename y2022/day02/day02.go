// Package day02 solves "Rock Paper Scissors".
package day02

import (
	_ "embed"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Shape is 0 for rock, 1 for paper, 2 for scissors.
type Shape int

// Round is one line of the strategy guide: the opponent's shape and the
// second column as 0, 1 or 2.
type Round struct {
	Opponent Shape
	Column   int
}

// Parse reads "A Y" style rounds.
func Parse(input string) ([]Round, error) {
	lines := puzzle.Lines(input)
	rounds := make([]Round, len(lines))
	for i, l := range lines {
		if len(l) != 3 || l[1] != ' ' || l[0] < 'A' || l[0] > 'C' || l[2] < 'X' || l[2] > 'Z' {
			return nil, puzzle.Malformed(i+1, l)
		}
		rounds[i] = Round{Opponent: Shape(l[0] - 'A'), Column: int(l[2] - 'X')}
	}

	return rounds, nil
}

// score is the shape value (1..3) plus 0 for a loss, 3 for a draw, 6 for a win.
func score(opp, me Shape) int {
	outcome := (int(me) - int(opp) + 4) % 3 // 0 loss, 1 draw, 2 win
	return int(me) + 1 + 3*outcome
}

func total(input string, mine func(Round) Shape) (puzzle.Answer, error) {
	rounds, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for _, r := range rounds {
		sum += score(r.Opponent, mine(r))
	}

	return puzzle.Int(sum), nil
}

// Part1 reads the second column as the shape to play.
func Part1(input string) (puzzle.Answer, error) {
	return total(input, func(r Round) Shape { return Shape(r.Column) })
}

// Part2 reads the second column as the outcome: X lose, Y draw, Z win.
func Part2(input string) (puzzle.Answer, error) {
	return total(input, func(r Round) Shape { return Shape((int(r.Opponent) + r.Column + 2) % 3) })
}
