package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/formatter"
	"github.com/philipp01105/drushlog/watchdog"
)

func newLevelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the log levels and whether the console shows them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}
			settings := a.settings.Settings()

			levels := core.Levels()
			rows := make([][]string, 0, len(levels))
			for _, l := range levels {
				_, shown := formatter.Render(core.NewEntry(l, "", nil), settings)
				rows = append(rows, []string{
					levelTitle(l),
					strconv.Itoa(l.Rank()),
					strconv.Itoa(watchdog.DefaultSeverities.Severity(l)),
					yesNo(shown),
					yesNo(core.ShouldEmit(l, a.console.IgnoreLevel())),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Level", "Rank", "Severity", "Console", "Logged"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
