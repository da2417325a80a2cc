package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/drushlog/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration helpers",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print a commented sample configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig())
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	})
	return cmd
}
