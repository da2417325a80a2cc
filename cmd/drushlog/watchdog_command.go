package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/watchdog"
)

func newWatchdogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchdog",
		Short: "Inspect the watchdog system log",
	}
	cmd.AddCommand(newWatchdogListCommand(ctx))
	return cmd
}

func newWatchdogListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var facility string
	var severity string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watchdog records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}
			if a.store == nil {
				return errors.New("watchdog is disabled; set watchdog.enabled = true in the config")
			}

			filter := watchdog.Filter{Facility: facility, Limit: limit}
			if severity != "" {
				level := core.ParseLevel(severity)
				s, ok := watchdog.DefaultSeverities.Lookup(level)
				if !ok {
					return fmt.Errorf("unknown severity level %q", severity)
				}
				filter.MaxSeverity = &s
			}

			records, err := a.store.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			total, err := a.store.Count(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					fmt.Sprintf("%d", rec.ID),
					humanize.Time(rec.Time),
					rec.Facility,
					levelTitle(severityLevel(rec.Severity)),
					rec.Text(),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Date", "Type", "Severity", "Message"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d of %s records\n", len(records), humanize.Comma(int64(total)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of records (0 for all)")
	cmd.Flags().StringVar(&facility, "type", "", "Only records with this facility")
	cmd.Flags().StringVar(&severity, "severity", "", "Only records at this level or more severe")
	return cmd
}
