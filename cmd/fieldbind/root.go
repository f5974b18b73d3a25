package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:          "fieldbind",
		Short:        "bind every record field to exactly one handler, checked before the build",
		SilenceUsage: true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newFieldsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newGenCmd())

	return &cmd
}
