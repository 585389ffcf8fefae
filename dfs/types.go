package dfs

import "errors"

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates TopologicalSort was given an undirected graph.
	ErrUndirected = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds hooks and mode switches for DFS.
type Options struct {
	// OnVisit is invoked when a vertex is discovered (pre-order).
	OnVisit func(id string, depth int) error

	// OnExit is invoked after all descendants of a vertex are explored (post-order).
	OnExit func(id string) error

	// FullTraversal restarts DFS from every unvisited vertex in sorted order.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks in single-source mode.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithFullTraversal covers disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its tree depth from its root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}
