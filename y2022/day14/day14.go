// Package day14 solves "Regolith Reservoir": sand pours from (500,0) into a
// cave of rock paths. Y grows downward.
package day14

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/point"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Pos is a cave coordinate.
type Pos = point.Point[int32]

// Source is where sand enters the cave.
var Source = point.New[int32](500, 0)

const (
	rock = '#'
	sand = 'o'
)

// falls lists the moves a grain tries in order: down, down-left, down-right.
var falls = [3]Pos{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// Cave holds the occupied tiles and the lowest rock row.
type Cave struct {
	tiles map[Pos]byte
	maxY  int32
}

// Parse draws every rock path; segments must be horizontal or vertical.
func Parse(input string) (*Cave, error) {
	c := &Cave{tiles: make(map[Pos]byte)}
	for i, l := range puzzle.Lines(input) {
		var path []Pos
		for _, pair := range strings.Split(l, " -> ") {
			xs, ys, ok := strings.Cut(pair, ",")
			x, errX := strconv.ParseInt(xs, 10, 32)
			y, errY := strconv.ParseInt(ys, 10, 32)
			if !ok || errX != nil || errY != nil || y < 0 {
				return nil, puzzle.Malformed(i+1, l)
			}
			path = append(path, point.New(int32(x), int32(y)))
		}
		if len(path) == 1 {
			c.put(path[0], rock)
		}
		for j := 1; j < len(path); j++ {
			a, b := path[j-1], path[j]
			if a.X != b.X && a.Y != b.Y {
				return nil, puzzle.Malformed(i+1, l)
			}
			for p := a; ; p = p.Step(b) {
				c.put(p, rock)
				if p == b {
					break
				}
			}
		}
	}
	if len(c.tiles) == 0 {
		return nil, puzzle.Malformedf("no rock")
	}

	return c, nil
}

func (c *Cave) put(p Pos, b byte) {
	c.tiles[p] = b
	if b == rock && p.Y > c.maxY {
		c.maxY = p.Y
	}
}

// Pour drops grains one by one and returns how many come to rest. Without
// a floor, pouring stops at the first grain falling past the lowest rock;
// with a floor two rows below it, pouring stops once the source is covered.
// The cave is modified in place.
func (c *Cave) Pour(floor bool) int {
	floorY := c.maxY + 2
	rested := 0
	for {
		if _, blocked := c.tiles[Source]; blocked {
			return rested
		}
		p := Source
		for {
			moved := false
			for _, f := range falls {
				next := p.Add(f)
				if floor && next.Y == floorY {
					break
				}
				if _, occupied := c.tiles[next]; !occupied {
					p, moved = next, true
					break
				}
			}
			if !moved {
				break
			}
			if !floor && p.Y > c.maxY {
				return rested
			}
		}
		c.tiles[p] = sand
		rested++
	}
}

// Render draws the bounding box of everything placed so far, with '+'
// marking the source.
func (c *Cave) Render() string {
	lo, hi := Source, Source
	for p := range c.tiles {
		lo = point.New(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = point.New(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	var sb strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		if y > lo.Y {
			sb.WriteByte('\n')
		}
		for x := lo.X; x <= hi.X; x++ {
			p := point.New(x, y)
			switch b, ok := c.tiles[p]; {
			case ok:
				sb.WriteByte(b)
			case p == Source:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

func solve(input string, floor bool) (puzzle.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Int(c.Pour(floor)), nil
}

// Part1 counts the grains at rest before sand falls into the abyss.
func Part1(input string) (puzzle.Answer, error) { return solve(input, false) }

// Part2 counts the grains at rest once the source is blocked.
func Part2(input string) (puzzle.Answer, error) { return solve(input, true) }
