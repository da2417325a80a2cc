package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &consoleFlags{}

	ctx := newCommandContext(&configFlag, flags)

	rootCmd := &cobra.Command{
		Use:           "drushlog",
		Short:         "Leveled console and watchdog logging",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureApp(cmd)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Show notice and info messages")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "Show every level with timing and memory")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Hide ok and success messages")
	pf.BoolVar(&flags.noColor, "nocolor", false, "Print plain [level] tags")
	pf.BoolVar(&flags.backend, "backend", false, "Write backend packets to stdout instead of console output")
	pf.IntVar(&flags.columns, "columns", 0, "Terminal width (0 detects it)")

	rootCmd.AddCommand(newLogCommand(ctx))
	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newLevelsCommand(ctx))
	rootCmd.AddCommand(newWatchdogCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
