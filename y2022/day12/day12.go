// Package day12 solves "Hill Climbing Algorithm" with a breadth-first search
// over the heightmap's grid graph.
package day12

import (
	_ "embed"
	"fmt"

	"github.com/katalvlaran/aoc/bfs"
	"github.com/katalvlaran/aoc/gridgraph"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Heightmap is the parsed terrain with S and E replaced by their heights.
type Heightmap struct {
	Grid       *gridgraph.Grid
	Start, End gridgraph.Cell
}

// Parse reads the heightmap and locates the start and the best signal.
func Parse(input string) (*Heightmap, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	starts, ends := g.FindAll('S'), g.FindAll('E')
	if len(starts) != 1 || len(ends) != 1 {
		return nil, puzzle.Malformedf("want one S and one E, got %d and %d", len(starts), len(ends))
	}
	h := &Heightmap{Grid: g, Start: starts[0], End: ends[0]}
	g.Set(h.Start.X, h.Start.Y, 'a')
	g.Set(h.End.X, h.End.Y, 'z')
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := g.At(x, y); c < 'a' || c > 'z' {
				return nil, puzzle.Malformedf("row %d col %d: %q is not a height", y+1, x+1, c)
			}
		}
	}

	return h, nil
}

// descend searches backwards from E, stepping to cells at most one lower,
// and returns the distance to the first cell that satisfies goal.
func (h *Heightmap) descend(goal func(gridgraph.Cell) bool) (int, bool, error) {
	g := h.Grid.ToCoreGraph(gridgraph.Conn4, func(from, to gridgraph.Cell) bool {
		return int(from.Value)-int(to.Value) <= 1
	})
	var (
		steps int
		found bool
	)
	_, err := bfs.BFS(g, gridgraph.VertexID(h.End.X, h.End.Y), bfs.WithOnVisit(func(id string, depth int) error {
		x, y, err := gridgraph.ParseVertexID(id)
		if err != nil {
			return err
		}
		if goal(h.Grid.Cell(x, y)) {
			steps, found = depth, true
			return bfs.ErrStop
		}
		return nil
	}))

	return steps, found, err
}

func solve(input string, goal func(*Heightmap, gridgraph.Cell) bool) (puzzle.Answer, error) {
	h, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	steps, ok, err := h.descend(func(c gridgraph.Cell) bool { return goal(h, c) })
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !ok {
		return puzzle.None("no path"), nil
	}

	return puzzle.Int(steps), nil
}

// Part1 returns the fewest steps from S to E.
func Part1(input string) (puzzle.Answer, error) {
	return solve(input, func(h *Heightmap, c gridgraph.Cell) bool {
		return c.X == h.Start.X && c.Y == h.Start.Y
	})
}

// Part2 returns the fewest steps from any lowest square to E.
func Part2(input string) (puzzle.Answer, error) {
	return solve(input, func(_ *Heightmap, c gridgraph.Cell) bool { return c.Value == 'a' })
}
