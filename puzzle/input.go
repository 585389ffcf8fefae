package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput is wrapped by every parse failure.
var ErrMalformedInput = errors.New("puzzle: malformed input")

// Malformed wraps ErrMalformedInput with a 1-based line number and the
// offending text.
func Malformed(line int, text string) error {
	return fmt.Errorf("%w: line %d: %q", ErrMalformedInput, line, text)
}

// Malformedf wraps ErrMalformedInput with a formatted description.
func Malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Lines splits input into lines, dropping carriage returns and trailing
// newlines. An empty input yields no lines.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r", ""), "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// Blocks splits input into groups separated by blank lines; each group is
// returned as its lines.
func Blocks(input string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Atoi parses a base-10 integer, wrapping ErrMalformedInput on failure.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, s)
	}

	return n, nil
}

// Ints parses whitespace-separated integers.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}
