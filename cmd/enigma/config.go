package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *machineFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration loaded from --config, or the default one, in the
YAML form accepted by --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.load()
			if err != nil {
				return err
			}
			data, err := f.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
