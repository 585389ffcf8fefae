// Package day07 solves "Some Assembly Required": a circuit of 16-bit
// signals wired through bitwise gates.
//
// Wires are evaluated in dependency order obtained from a topological sort
// of the wire graph (input wire → output wire).
package day07

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/core"
	"github.com/katalvlaran/aoc/dfs"
	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Op is a gate kind.
type Op string

const (
	Assign Op = "->"
	And    Op = "AND"
	Or     Op = "OR"
	LShift Op = "LSHIFT"
	RShift Op = "RSHIFT"
	Not    Op = "NOT"
)

// Operand is either a literal signal or a wire name.
type Operand struct {
	Wire  string
	Value uint16
}

func parseOperand(s string) (Operand, bool) {
	if s == "" {
		return Operand{}, false
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return Operand{Value: uint16(n)}, true
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
		return Operand{}, false
	}

	return Operand{Wire: s}, true
}

// Gate drives one wire. B is unused by Assign and Not.
type Gate struct {
	Op   Op
	A, B Operand
}

// Circuit maps each output wire to the gate driving it.
type Circuit map[string]Gate

// Parse reads one "<expr> -> wire" connection per line.
func Parse(input string) (Circuit, error) {
	c := make(Circuit)
	for i, l := range puzzle.Lines(input) {
		expr, out, ok := strings.Cut(l, " -> ")
		if !ok {
			return nil, puzzle.Malformed(i+1, l)
		}
		if _, dup := c[out]; dup {
			return nil, puzzle.Malformedf("line %d: wire %q driven twice", i+1, out)
		}
		if _, ok = parseOperand(out); !ok || out == "" {
			return nil, puzzle.Malformed(i+1, l)
		}

		f := strings.Fields(expr)
		var g Gate
		switch len(f) {
		case 1:
			g.Op = Assign
			g.A, ok = parseOperand(f[0])
		case 2:
			g.Op = Not
			g.A, ok = parseOperand(f[1])
			ok = ok && f[0] == string(Not)
		case 3:
			g.Op = Op(f[1])
			var okA, okB bool
			g.A, okA = parseOperand(f[0])
			g.B, okB = parseOperand(f[2])
			ok = okA && okB
			switch g.Op {
			case And, Or, LShift, RShift:
			default:
				ok = false
			}
		default:
			ok = false
		}
		if !ok {
			return nil, puzzle.Malformed(i+1, l)
		}
		c[out] = g
	}

	return c, nil
}

// Evaluate computes the signal on every wire.
// A referenced wire without a driver or a feedback loop is malformed input.
func (c Circuit) Evaluate() (map[string]uint16, error) {
	g := core.NewGraph(core.WithDirected(true))
	for out, gate := range c {
		if err := g.AddVertex(out); err != nil {
			return nil, fmt.Errorf("%w: wire %q: %w", puzzle.ErrMalformedInput, out, err)
		}
		for _, in := range []Operand{gate.A, gate.B} {
			if in.Wire == "" {
				continue
			}
			if _, ok := c[in.Wire]; !ok {
				return nil, puzzle.Malformedf("wire %q has no source", in.Wire)
			}
			if err := g.AddEdge(in.Wire, out); err != nil {
				return nil, fmt.Errorf("%w: wire %q: %w", puzzle.ErrMalformedInput, out, err)
			}
		}
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}

	signals := make(map[string]uint16, len(order))
	val := func(o Operand) uint16 {
		if o.Wire != "" {
			return signals[o.Wire]
		}
		return o.Value
	}
	for _, w := range order {
		gate := c[w]
		a, b := val(gate.A), val(gate.B)
		switch gate.Op {
		case Assign:
			signals[w] = a
		case Not:
			signals[w] = ^a
		case And:
			signals[w] = a & b
		case Or:
			signals[w] = a | b
		case LShift:
			signals[w] = a << b
		case RShift:
			signals[w] = a >> b
		}
	}

	return signals, nil
}

func signalA(c Circuit) (puzzle.Answer, uint16, error) {
	signals, err := c.Evaluate()
	if err != nil {
		return puzzle.Answer{}, 0, err
	}
	a, ok := signals["a"]
	if !ok {
		return puzzle.Answer{}, 0, puzzle.Malformedf("no wire %q", "a")
	}

	return puzzle.Int(int(a)), a, nil
}

// Part1 returns the signal on wire a.
func Part1(input string) (puzzle.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans, _, err := signalA(c)

	return ans, err
}

// Part2 overrides wire b with part 1's signal on a and returns the new a.
func Part2(input string) (puzzle.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, a, err := signalA(c)
	if err != nil {
		return puzzle.Answer{}, err
	}
	c["b"] = Gate{Op: Assign, A: Operand{Value: a}}
	ans, _, err := signalA(c)

	return ans, err
}
