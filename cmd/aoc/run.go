package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/puzzles"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		inputPath string
		part      int
	)
	cmd := &cobra.Command{
		Use:   "run <year> [day]",
		Short: "Run one day, or every day of a year",
		Example: `  aoc run 2022 9
  aoc run 2015
  aoc run 2022 12 --input ./my-heightmap.txt --part 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 1 or 2, got %d", part)
			}
			days, err := selectDays(args)
			if err != nil {
				return err
			}
			if inputPath != "" {
				if len(days) != 1 {
					return fmt.Errorf("--input needs a single day")
				}
				b, err := os.ReadFile(inputPath)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				days[0].Input = string(b)
			}
			for _, d := range days {
				if err = a.runDay(cmd.OutOrStdout(), d, part); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Read the puzzle input from this file instead of the embedded one")
	cmd.Flags().IntVar(&part, "part", 0, "Run only part 1 or 2")

	return cmd
}

// selectDays resolves "<year> [day]" arguments against the catalogue.
func selectDays(args []string) ([]puzzle.Day, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", args[0])
	}
	if len(args) == 1 {
		days := puzzles.Year(year)
		if len(days) == 0 {
			return nil, fmt.Errorf("no solutions for %d", year)
		}
		return days, nil
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid day %q", args[1])
	}
	d, ok := puzzles.Find(year, day)
	if !ok {
		return nil, fmt.Errorf("no solution for %d day %d", year, day)
	}

	return []puzzle.Day{d}, nil
}

// solvePart runs one part and logs its duration at debug level.
func (a *app) solvePart(d puzzle.Day, part int) (puzzle.Answer, error) {
	solve := d.Part(part)
	if solve == nil {
		return puzzle.Answer{}, fmt.Errorf("%s has no part %d", d.Key(), part)
	}
	start := time.Now()
	ans, err := solve(d.Input)
	elapsed := time.Since(start)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("%s part %d: %w", d.Key(), part, err)
	}
	a.logger.Debug("part solved",
		zap.Int("year", d.Year),
		zap.Int("day", d.Day),
		zap.Int("part", part),
		zap.Duration("elapsed", elapsed),
	)

	return ans, nil
}

// runDay prints "YYYY Day DD - Part N: <answer>" for the requested parts.
func (a *app) runDay(w io.Writer, d puzzle.Day, only int) error {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- %d Day %02d: %s ---", d.Year, d.Day, d.Title)))
	for part := 1; part <= 2; part++ {
		if only != 0 && part != only {
			continue
		}
		ans, err := a.solvePart(d, part)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%d Day %02d - Part %d:", d.Year, d.Day, part)), formatAnswer(ans))
	}

	return nil
}

// formatAnswer renders multi-line answers indented below the label.
func formatAnswer(ans puzzle.Answer) string {
	if !ans.OK() {
		return noneStyle.Render(ans.String())
	}
	s := ans.String()
	if !strings.Contains(s, "\n") {
		return answerStyle.Render(s)
	}

	return "\n    " + strings.ReplaceAll(s, "\n", "\n    ")
}
