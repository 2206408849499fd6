// Version command for the openaddr CLI.
package main

import (
	"fmt"

	"github.com/homier/openaddr"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the openaddr version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "openaddr", openaddr.Version)
		},
	}
}
