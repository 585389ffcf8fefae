package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID, or over the whole
// forest when WithFullTraversal is set (startID is then ignored).
// Neighbours are explored in the graph's edge-creation order.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify startID
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result
	n := g.VertexCount()
	w := &walker{graph: g, opts: o, res: &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}}

	// 5. Traverse: forest or single tree
	if !o.FullTraversal {
		if err := w.traverse(startID, 0); err != nil {
			return w.res, err
		}
		return w.res, nil
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at depth, recursing into unvisited neighbours.
func (w *walker) traverse(id string, depth int) error {
	// 1. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 3. Explore neighbours
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 4. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
