package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/core"
	"github.com/katalvlaran/aoc/dfs"
)

func tree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.AddVertex("Z"))

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PostOrder(t *testing.T) {
	res, err := dfs.DFS(tree(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, res.Parent)
	assert.False(t, res.Visited["Z"])
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []string
	_, err := dfs.DFS(tree(t), "A",
		dfs.WithOnVisit(func(id string, _ int) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, pre)
	assert.Equal(t, []string{"D", "B", "C", "A"}, post)

	boom := errors.New("boom")
	_, err = dfs.DFS(tree(t), "A", dfs.WithOnExit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(tree(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A", "Z"}, res.Order)
	assert.True(t, res.Visited["Z"])
}

func TestDFS_UndirectedCycle(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
}
