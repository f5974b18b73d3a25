package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		patterns     []string
		bindingsPath string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "validate a bindings manifest against the loaded packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveManifest(patterns, bindingsPath, strict)
			if err != nil {
				return err
			}

			if err := reportDiagnostics(cmd.ErrOrStderr(), &p.Diagnostics); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok: all record bindings complete")

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", []string{"./..."}, "package patterns to load")
	cmd.Flags().StringVarP(&bindingsPath, "bindings", "b", "bindings.yaml", "path to the bindings manifest")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
