// Package aoc collects Advent of Code solutions together with the small
// graph and grid toolkit they are built on.
//
// 🚀 What is in here?
//
//	• Solutions: one package per day (y2015/day01 … y2024/day02), each with
//	  Parse, Part1 and Part2 and an embedded worked example as Input
//	• Toolkit: a directed/undirected graph (core), breadth- and depth-first
//	  traversals (bfs, dfs), character grids (gridgraph) and a generic
//	  2D point (point)
//	• Runner: cmd/aoc runs, lists and verifies every registered day
//
// ✨ Conventions
//
//   - Every solver has the shape func(input string) (puzzle.Answer, error)
//   - Bad input is reported as an error wrapping puzzle.ErrMalformedInput
//   - A well-formed input with no solution yields puzzle.None(reason)
//   - Solvers are pure; running one twice gives the same Answer
//
// Layout:
//
//	core/       Graph, Edge and vertex values
//	bfs/, dfs/  traversals with hooks, paths and topological order
//	gridgraph/  rectangular grids, rays, neighbours and graph conversion
//	point/      Point[T] with Manhattan and Chebyshev distances
//	puzzle/     Answer, Day, Solver and input helpers
//	puzzles/    the catalogue of days and their recorded answers
//	cmd/aoc/    command-line runner
//
// Quick start:
//
//	go run ./cmd/aoc run 2022 9
//	go run ./cmd/aoc verify
package aoc
