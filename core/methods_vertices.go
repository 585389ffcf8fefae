package core

import "sort"

// AddVertex inserts a vertex with the given id. Adding an existing id is a no-op.
// Returns ErrEmptyVertexID if id is "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// SetValue stores v on vertex id.
// Returns ErrVertexNotFound if the vertex is absent.
func (g *Graph) SetValue(id string, v int) error {
	vert, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	vert.Value = v

	return nil
}

// Value returns the integer stored on vertex id.
func (g *Graph) Value(id string) (int, error) {
	vert, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return vert.Value, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }
