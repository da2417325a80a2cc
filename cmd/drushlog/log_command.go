package main

import (
	"github.com/spf13/cobra"

	"github.com/philipp01105/drushlog/core"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var facility string
	var link string

	cmd := &cobra.Command{
		Use:   "log <level> <message> [key=value...]",
		Short: "Log one message",
		Long: "Log one message at the given level. Extra key=value arguments become\n" +
			"the message context; @key, %key and !key placeholders are filled in\n" +
			"when the watchdog record is displayed.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd)
			if err != nil {
				return err
			}
			context, err := parseContext(args[2:])
			if err != nil {
				return err
			}
			if facility != "" {
				context[core.FacilityKey] = facility
			}
			if link != "" {
				context[core.LinkKey] = link
			}
			a.log.Logger().Log(core.Level(args[0]), args[1], context)
			return nil
		},
	}

	cmd.Flags().StringVar(&facility, "type", "drushlog", "Watchdog facility")
	cmd.Flags().StringVar(&link, "link", "", "Link stored with the watchdog record")
	return cmd
}
