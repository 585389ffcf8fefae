package puzzle

import "fmt"

// Solver computes one part from the raw puzzle input.
type Solver func(input string) (Answer, error)

// Day describes one implemented puzzle.
type Day struct {
	Year  int
	Day   int
	Title string
	// Input is the embedded puzzle input.
	Input string
	Part1 Solver
	Part2 Solver
}

// Key identifies the day as "YYYY/DD".
func (d Day) Key() string {
	return fmt.Sprintf("%04d/%02d", d.Year, d.Day)
}

// Part returns the solver for part 1 or 2, or nil.
func (d Day) Part(n int) Solver {
	switch n {
	case 1:
		return d.Part1
	case 2:
		return d.Part2
	}

	return nil
}
