package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/puzzles"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := puzzles.All()
			rows := make([][]string, 0, len(all))
			for _, d := range all {
				rows = append(rows, []string{strconv.Itoa(d.Year), fmt.Sprintf("%02d", d.Day), d.Title})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Year", "Day", "Title"}, rows))
			a.logger.Debug("listed days", zap.Int("count", len(all)))
			return nil
		},
	}
}
