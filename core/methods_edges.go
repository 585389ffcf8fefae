package core

// AddEdge connects from→to (and to→from for undirected graphs), creating
// missing endpoints. A second edge between the same endpoints is ignored.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure both vertices exist.
//  3. Skip if the pair is already linked.
//  4. Record the edge, mirrored when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	// 1. Validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2. Endpoints
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	// 3. Deduplicate
	if g.HasEdge(from, to) {
		return nil
	}

	// 4. Insert
	g.nextSeq++
	g.edgeCount++
	g.link(&Edge{Seq: g.nextSeq, From: from, To: to})
	if !g.directed && from != to {
		g.link(&Edge{Seq: g.nextSeq, From: to, To: from})
	}

	return nil
}

func (g *Graph) link(e *Edge) {
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	if g.linked[e.From] == nil {
		g.linked[e.From] = make(map[string]struct{})
	}
	g.linked[e.From][e.To] = struct{}{}
}

// HasEdge reports whether from→to is traversable.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.linked[from][to]

	return ok
}

// Neighbors returns the outgoing edges of id in creation order.
// Returns ErrEmptyVertexID or ErrVertexNotFound for invalid ids.
// The returned slice is a copy; the edges themselves are shared and read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// NeighborIDs returns the IDs reachable in one step from id, in creation order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// EdgeCount returns the number of logical edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int { return g.edgeCount }
