// Package day11 solves "Monkey in the Middle".
package day11

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Operation computes a new worry level from the old one.
type Operation struct {
	Mul     bool // multiply instead of add
	Operand int  // ignored when Self is set
	Self    bool // operand is "old"
}

// Apply runs the operation on old.
func (o Operation) Apply(old int) int {
	v := o.Operand
	if o.Self {
		v = old
	}
	if o.Mul {
		return old * v
	}

	return old + v
}

// Monkey is one monkey's starting items and throwing rule.
type Monkey struct {
	Items   []int
	Op      Operation
	Divisor int
	IfTrue  int
	IfFalse int
}

// Parse reads the blank-line separated monkey blocks.
func Parse(input string) ([]Monkey, error) {
	blocks := puzzle.Blocks(input)
	monkeys := make([]Monkey, len(blocks))
	for i, b := range blocks {
		m, err := parseMonkey(i, b)
		if err != nil {
			return nil, fmt.Errorf("monkey %d: %w", i, err)
		}
		monkeys[i] = m
	}
	for i, m := range monkeys {
		for _, t := range []int{m.IfTrue, m.IfFalse} {
			if t < 0 || t >= len(monkeys) || t == i {
				return nil, puzzle.Malformedf("monkey %d throws to monkey %d", i, t)
			}
		}
	}

	return monkeys, nil
}

func parseMonkey(idx int, lines []string) (Monkey, error) {
	var m Monkey
	if len(lines) != 6 {
		return m, puzzle.Malformedf("want 6 lines, got %d", len(lines))
	}
	var id int
	if _, err := fmt.Sscanf(lines[0], "Monkey %d:", &id); err != nil || id != idx {
		return m, puzzle.Malformedf("header %q", lines[0])
	}

	items, ok := strings.CutPrefix(strings.TrimSpace(lines[1]), "Starting items:")
	if !ok {
		return m, puzzle.Malformedf("items %q", lines[1])
	}
	for _, f := range strings.Split(items, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		n, err := puzzle.Atoi(f)
		if err != nil {
			return m, err
		}
		m.Items = append(m.Items, n)
	}

	var op, rhs string
	if _, err := fmt.Sscanf(strings.TrimSpace(lines[2]), "Operation: new = old %s %s", &op, &rhs); err != nil {
		return m, puzzle.Malformedf("operation %q", lines[2])
	}
	switch op {
	case "*":
		m.Op.Mul = true
	case "+":
	default:
		return m, puzzle.Malformedf("operator %q", op)
	}
	if rhs == "old" {
		m.Op.Self = true
	} else {
		n, err := puzzle.Atoi(rhs)
		if err != nil {
			return m, err
		}
		m.Op.Operand = n
	}

	if _, err := fmt.Sscanf(strings.TrimSpace(lines[3]), "Test: divisible by %d", &m.Divisor); err != nil || m.Divisor <= 0 {
		return m, puzzle.Malformedf("test %q", lines[3])
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(lines[4]), "If true: throw to monkey %d", &m.IfTrue); err != nil {
		return m, puzzle.Malformedf("target %q", lines[4])
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(lines[5]), "If false: throw to monkey %d", &m.IfFalse); err != nil {
		return m, puzzle.Malformedf("target %q", lines[5])
	}

	return m, nil
}

// Inspections plays rounds and returns how many items each monkey
// inspected. With relief, worry is divided by three after each inspection;
// without it, worry is kept modulo the product of all divisors.
func Inspections(monkeys []Monkey, rounds int, relief bool) []int {
	items := make([][]int, len(monkeys))
	mod := 1
	for i, m := range monkeys {
		items[i] = slices.Clone(m.Items)
		mod *= m.Divisor
	}
	counts := make([]int, len(monkeys))
	for r := 0; r < rounds; r++ {
		for i, m := range monkeys {
			for _, w := range items[i] {
				w = m.Op.Apply(w)
				if relief {
					w /= 3
				} else {
					w %= mod
				}
				to := m.IfFalse
				if w%m.Divisor == 0 {
					to = m.IfTrue
				}
				items[to] = append(items[to], w)
			}
			counts[i] += len(items[i])
			items[i] = items[i][:0]
		}
	}

	return counts
}

// business multiplies the two highest inspection counts.
func business(counts []int) int {
	c := slices.Clone(counts)
	slices.Sort(c)
	if len(c) < 2 {
		return 0
	}

	return c[len(c)-1] * c[len(c)-2]
}

func solve(input string, rounds int, relief bool) (puzzle.Answer, error) {
	monkeys, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(monkeys) < 2 {
		return puzzle.None("fewer than two monkeys"), nil
	}

	return puzzle.Int(business(Inspections(monkeys, rounds, relief))), nil
}

// Part1 plays 20 rounds with relief.
func Part1(input string) (puzzle.Answer, error) { return solve(input, 20, true) }

// Part2 plays 10000 rounds without relief.
func Part2(input string) (puzzle.Answer, error) { return solve(input, 10000, false) }
