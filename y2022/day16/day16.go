// Package day16 solves "Proboscidea Volcanium".
//
// Valves and tunnels form an undirected core.Graph whose vertex values are
// flow rates. Only valves with positive flow matter, so the search runs on
// a compressed distance table between them (one BFS per useful valve) and
// explores opening orders depth-first.
package day16

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/bfs"
	"github.com/katalvlaran/aoc/core"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Start is the valve where the search begins.
const Start = "AA"

var valveRE = regexp.MustCompile(`^Valve ([A-Z]{2}) has flow rate=(\d+); tunnels? leads? to valves? ([A-Z]{2}(?:, [A-Z]{2})*)$`)

// Parse builds the tunnel graph.
func Parse(input string) (*core.Graph, error) {
	g := core.NewGraph()
	for i, l := range puzzle.Lines(input) {
		m := valveRE.FindStringSubmatch(l)
		if m == nil {
			return nil, puzzle.Malformed(i+1, l)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, puzzle.Malformed(i+1, l)
		}
		if err = g.AddVertex(m[1]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", puzzle.ErrMalformedInput, i+1, err)
		}
		if err = g.SetValue(m[1], rate); err != nil {
			return nil, err
		}
		for _, to := range strings.Split(m[3], ", ") {
			if err = g.AddEdge(m[1], to); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", puzzle.ErrMalformedInput, i+1, err)
			}
		}
	}
	if !g.HasVertex(Start) {
		return nil, puzzle.Malformedf("no valve %s", Start)
	}

	return g, nil
}

// Network is the compressed view: useful valves indexed 0..n-1 and the
// start at index n.
type Network struct {
	Names []string
	Rates []int
	Dist  [][]int
}

// Compress keeps the valves with positive flow plus Start, with the
// shortest tunnel distance between every pair.
func Compress(g *core.Graph) (*Network, error) {
	n := &Network{}
	for _, id := range g.Vertices() {
		if rate, _ := g.Value(id); rate > 0 {
			n.Names = append(n.Names, id)
			n.Rates = append(n.Rates, rate)
		}
	}
	nodes := append(append([]string{}, n.Names...), Start)
	n.Dist = make([][]int, len(nodes))
	for i, from := range nodes {
		res, err := bfs.BFS(g, from)
		if err != nil {
			return nil, fmt.Errorf("distances from %s: %w", from, err)
		}
		n.Dist[i] = make([]int, len(nodes))
		for j, to := range nodes {
			d, ok := res.DistanceTo(to)
			if !ok {
				d = -1
			}
			n.Dist[i][j] = d
		}
	}

	return n, nil
}

// Best explores every opening order within minutes and returns, for each
// set of opened valves (bitmask over Names), the most pressure released by
// an order that opens exactly that set.
func (n *Network) Best(minutes int) map[uint64]int {
	best := map[uint64]int{0: 0}
	var walk func(at, left int, opened uint64, released int)
	walk = func(at, left int, opened uint64, released int) {
		if released > best[opened] {
			best[opened] = released
		}
		for next := range n.Names {
			bit := uint64(1) << next
			d := n.Dist[at][next]
			if opened&bit != 0 || d < 0 || d+1 >= left {
				continue
			}
			remain := left - d - 1
			walk(next, remain, opened|bit, released+remain*n.Rates[next])
		}
	}
	walk(len(n.Names), minutes, 0, 0)

	return best
}

func network(input string) (*Network, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	n, err := Compress(g)
	if err != nil {
		return nil, err
	}
	if len(n.Names) > 64 {
		return nil, puzzle.Malformedf("%d useful valves exceed the search limit", len(n.Names))
	}

	return n, nil
}

// Part1 returns the most pressure one can release in 30 minutes.
func Part1(input string) (puzzle.Answer, error) {
	n, err := network(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	most := 0
	for _, v := range n.Best(30) {
		most = max(most, v)
	}

	return puzzle.Int(most), nil
}

// Part2 returns the most pressure released in 26 minutes by you and an
// elephant opening disjoint sets of valves.
func Part2(input string) (puzzle.Answer, error) {
	n, err := network(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	best := n.Best(26)
	type entry struct {
		mask uint64
		v    int
	}
	entries := make([]entry, 0, len(best))
	for m, v := range best {
		entries = append(entries, entry{m, v})
	}
	most := 0
	for i, a := range entries {
		for _, b := range entries[i:] {
			if a.mask&b.mask == 0 {
				most = max(most, a.v+b.v)
			}
		}
	}

	return puzzle.Int(most), nil
}
