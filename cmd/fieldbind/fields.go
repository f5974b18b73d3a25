package main

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/spf13/cobra"

	"fieldbind/internal/analyze"
)

func newFieldsCmd() *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "fields [record]",
		Short: "print the field registry of record types in the loaded packages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := analyze.NewAnalyzer().LoadPackages(patterns...)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				rec, err := reg.Resolve(args[0])
				if err != nil {
					return err
				}

				printRecord(cmd, rec)

				return nil
			}

			for _, rec := range reg.Records() {
				printRecord(cmd, rec)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", []string{"./..."}, "package patterns to load")

	return cmd
}

func printRecord(cmd *cobra.Command, rec *analyze.RecordInfo) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rec.ID)

	qual := analyze.Qualifier(nil)

	for i := range rec.Fields {
		f := &rec.Fields[i]

		var marks []string
		if f.Optional {
			marks = append(marks, "optional")
		}

		if f.Embedded {
			marks = append(marks, "embedded")
		}

		suffix := ""
		if len(marks) > 0 {
			suffix = "  (" + strings.Join(marks, ", ") + ")"
		}

		fmt.Fprintf(out, "  %-16s %s%s\n", f.Name, types.TypeString(f.Type, qual), suffix)
	}
}
