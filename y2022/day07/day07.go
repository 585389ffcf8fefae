// Package day07 solves "No Space Left On Device".
//
// The terminal transcript is replayed into a directory tree held in a
// directed core.Graph (parent → child). Each vertex carries the size of
// the files directly inside it; totals are rolled up in DFS post-order.
package day07

import (
	_ "embed"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/core"
	"github.com/katalvlaran/aoc/dfs"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

const (
	// Root is the path of the top-level directory.
	Root = "/"

	smallLimit = 100000
	diskSize   = 70000000
	needFree   = 30000000
)

// FileSystem is the directory tree reconstructed from a transcript.
type FileSystem struct {
	tree  *core.Graph
	files map[string]int
}

// Parse replays the transcript. Files listed twice are counted once.
func Parse(input string) (*FileSystem, error) {
	fs := &FileSystem{
		tree:  core.NewGraph(core.WithDirected(true)),
		files: make(map[string]int),
	}
	if err := fs.tree.AddVertex(Root); err != nil {
		return nil, err
	}

	cwd := Root
	for i, l := range puzzle.Lines(input) {
		f := strings.Fields(l)
		switch {
		case len(f) == 3 && f[0] == "$" && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = Root
			case "..":
				cwd = path.Dir(cwd)
			default:
				next := path.Join(cwd, f[2])
				if err := fs.tree.AddEdge(cwd, next); err != nil {
					return nil, fmt.Errorf("%w: line %d: %w", puzzle.ErrMalformedInput, i+1, err)
				}
				cwd = next
			}
		case len(f) == 2 && f[0] == "$" && f[1] == "ls":
		case len(f) == 2 && f[0] == "dir":
			if err := fs.tree.AddEdge(cwd, path.Join(cwd, f[1])); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", puzzle.ErrMalformedInput, i+1, err)
			}
		case len(f) == 2:
			size, err := strconv.Atoi(f[0])
			if err != nil || size < 0 {
				return nil, puzzle.Malformed(i+1, l)
			}
			file := path.Join(cwd, f[1])
			if _, seen := fs.files[file]; seen {
				continue
			}
			fs.files[file] = size
			v, _ := fs.tree.Value(cwd)
			if err = fs.tree.SetValue(cwd, v+size); err != nil {
				return nil, err
			}
		default:
			return nil, puzzle.Malformed(i+1, l)
		}
	}

	return fs, nil
}

// Sizes returns the total size of every directory, keyed by path.
func (fs *FileSystem) Sizes() (map[string]int, error) {
	totals := make(map[string]int, fs.tree.VertexCount())
	_, err := dfs.DFS(fs.tree, Root, dfs.WithOnExit(func(dir string) error {
		own, err := fs.tree.Value(dir)
		if err != nil {
			return err
		}
		kids, err := fs.tree.NeighborIDs(dir)
		if err != nil {
			return err
		}
		for _, k := range kids {
			own += totals[k]
		}
		totals[dir] = own
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return totals, nil
}

func sizes(input string) (map[string]int, error) {
	fs, err := Parse(input)
	if err != nil {
		return nil, err
	}

	return fs.Sizes()
}

// Part1 sums the sizes of directories of at most 100000.
func Part1(input string) (puzzle.Answer, error) {
	totals, err := sizes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for _, s := range totals {
		if s <= smallLimit {
			sum += s
		}
	}

	return puzzle.Int(sum), nil
}

// Part2 returns the size of the smallest directory whose deletion leaves
// 30000000 free on a 70000000 disk.
func Part2(input string) (puzzle.Answer, error) {
	totals, err := sizes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	// the root always qualifies: it frees everything in use
	need := needFree - (diskSize - totals[Root])
	best := totals[Root]
	for _, s := range totals {
		if s >= need && s < best {
			best = s
		}
	}

	return puzzle.Int(best), nil
}
