package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/core"
)

// Parse builds a Grid from newline-separated rows. A trailing newline and
// carriage returns are ignored.
// Returns ErrEmptyGrid or ErrNonRectangular (wrapped with the row number).
// Complexity: O(W×H).
func Parse(input string) (*Grid, error) {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r", ""), "\n")
	if input == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(input, "\n")
	w := len(rows[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Width: w, Height: len(rows), cells: make([]byte, 0, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the byte at (x,y). It panics when (x,y) is out of bounds,
// like a slice index.
func (g *Grid) At(x, y int) byte {
	return g.cells[g.Index(x, y)]
}

// Set stores b at (x,y).
func (g *Grid) Set(x, y int, b byte) {
	g.cells[g.Index(x, y)] = b
}

// Cell returns the cell at (x,y).
func (g *Grid) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, Value: g.At(x, y)}
}

// Find returns the first cell holding b in row-major order.
func (g *Grid) Find(b byte) (Cell, bool) {
	for i, v := range g.cells {
		if v == b {
			x, y := g.Coordinate(i)
			return Cell{X: x, Y: y, Value: v}, true
		}
	}

	return Cell{}, false
}

// FindAll returns every cell holding b in row-major order.
func (g *Grid) FindAll(b byte) []Cell {
	var out []Cell
	for i, v := range g.cells {
		if v == b {
			x, y := g.Coordinate(i)
			out = append(out, Cell{X: x, Y: y, Value: v})
		}
	}

	return out
}

// Neighbors returns the in-bounds neighbors of (x,y) in conn's offset order.
func (g *Grid) Neighbors(x, y int, conn Connectivity) []Cell {
	offs := conn.Offsets()
	out := make([]Cell, 0, len(offs))
	for _, d := range offs {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, g.Cell(nx, ny))
		}
	}

	return out
}

// Ray returns the cells strictly beyond (x,y) stepping by (dx,dy) until the
// grid edge, nearest first. A zero step yields nil.
// Complexity: O(max(W, H)).
func (g *Grid) Ray(x, y, dx, dy int) []Cell {
	if dx == 0 && dy == 0 {
		return nil
	}
	var out []Cell
	for nx, ny := x+dx, y+dy; g.InBounds(nx, ny); nx, ny = nx+dx, ny+dy {
		out = append(out, g.Cell(nx, ny))
	}

	return out
}

// String renders the grid back to newline-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.cells[y*g.Width : (y+1)*g.Width])
	}

	return sb.String()
}

// VertexID formats the vertex identifier for cell (x,y) used by ToCoreGraph.
func VertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseVertexID is the inverse of VertexID.
func ParseVertexID(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return x, y, nil
}

// ToCoreGraph converts the grid into a directed *core.Graph.
// Each cell becomes a vertex "x,y" carrying its byte as Value; an edge
// from→to exists for every conn-neighbor pair accepted by allow (nil accepts
// all). Vertices are added row-major and edges in offset order.
// Complexity: O(W×H×d) time and memory.
func (g *Grid) ToCoreGraph(conn Connectivity, allow func(from, to Cell) bool) *core.Graph {
	cg := core.NewGraph(core.WithDirected(true))
	for i, v := range g.cells {
		x, y := g.Coordinate(i)
		id := VertexID(x, y)
		_ = cg.AddVertex(id)
		_ = cg.SetValue(id, int(v))
	}
	for i, v := range g.cells {
		x, y := g.Coordinate(i)
		from := Cell{X: x, Y: y, Value: v}
		for _, to := range g.Neighbors(x, y, conn) {
			if allow != nil && !allow(from, to) {
				continue
			}
			_ = cg.AddEdge(VertexID(x, y), VertexID(to.X, to.Y))
		}
	}

	return cg
}
