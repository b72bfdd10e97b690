package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshepherd549/enigma"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of enigma",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "enigma version %s\n", strings.TrimSpace(enigma.Version))
		},
	}
}
