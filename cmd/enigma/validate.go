package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(flags *machineFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the machine configuration",
		Long:  `Builds the machine described by --config and reports the first invalid field.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := flags.build(cmd)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid: %v\n", m)
			return err
		},
	}
}
