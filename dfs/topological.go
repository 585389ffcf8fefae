package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	state map[string]int
	order []string
}

// TopologicalSort computes an ordering of all vertices in g such that for
// every edge u→v, u appears before v. Roots are taken in sorted ID order and
// neighbours in edge-creation order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrUndirected, or ErrCycleDetected wrapped with the
// vertex at which the back edge was found.
func TopologicalSort(g *core.Graph) ([]string, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	// 2. Drive DFS from every unvisited vertex
	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 3. Reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit marks states and detects back edges.
func (s *topoSorter) visit(id string) error {
	switch s.state[id] {
	case Gray:
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	s.state[id] = Gray

	nbs, err := s.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if err = s.visit(nid); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
