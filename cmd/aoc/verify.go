package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/puzzles"
)

var errMismatch = errors.New("answers do not match")

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every day's answers on its embedded input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, err := puzzles.Answers()
			if err != nil {
				return err
			}
			var (
				rows  [][]string
				wrong int
			)
			for _, d := range puzzles.All() {
				exp := expected[d.Key()]
				for part := 1; part <= 2; part++ {
					want := exp.Part(part)
					if want == "" {
						a.logger.Debug("no expected answer", zap.String("day", d.Key()), zap.Int("part", part))
						continue
					}
					ans, err := a.solvePart(d, part)
					if err != nil {
						return err
					}
					status := okStyle.Render("ok")
					if got := ans.String(); got != want {
						wrong++
						status = failStyle.Render("FAIL")
						a.logger.Warn("answer mismatch",
							zap.String("day", d.Key()),
							zap.Int("part", part),
							zap.String("want", want),
							zap.String("got", got),
						)
					}
					rows = append(rows, []string{d.Key(), fmt.Sprint(part), status})
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Day", "Part", "Status"}, rows))
			if wrong > 0 {
				return fmt.Errorf("%w: %d of %d parts", errMismatch, wrong, len(rows))
			}
			return nil
		},
	}
}
