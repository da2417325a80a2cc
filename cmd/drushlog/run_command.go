package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philipp01105/drushlog/formatter"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Log lines read from stdin and print the history",
		Long: "Read \"level: message\" lines from stdin and log each one. Lines\n" +
			"without a level are notices. When input ends the recorded history is\n" +
			"printed as a table or as JSON lines.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}
			if format != "table" && format != "json" && format != "none" {
				return fmt.Errorf("unknown format %q: expected table, json or none", format)
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				level, message := parseLine(line)
				a.log.Log(level, message)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			out := cmd.OutOrStdout()
			entries := a.history.Entries()
			switch format {
			case "json":
				f := formatter.NewJSONFormatter()
				for _, e := range entries {
					data, err := f.Format(e)
					if err != nil {
						return err
					}
					if _, err := out.Write(data); err != nil {
						return err
					}
				}
			case "table":
				rows := make([][]string, 0, len(entries))
				for i, e := range entries {
					rows = append(rows, []string{
						fmt.Sprintf("%d", i+1),
						levelTitle(e.Level),
						e.Message,
						humanize.Time(e.Time),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Level", "Message", "Logged"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "History output: table, json or none")
	return cmd
}
