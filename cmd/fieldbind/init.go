package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldbind/internal/analyze"
	"fieldbind/internal/bindings"
)

func newInitCmd() *cobra.Command {
	var (
		patterns     []string
		bindingsPath string
		target       string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init [record...]",
		Short: "scaffold a bindings manifest with every field ignored",
		Long: `init writes a manifest that already passes check: every field of the
named records (or of all records found, when none are named) is listed
under ignore. Cover a field by moving it to a handler entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(bindingsPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", bindingsPath)
				}
			}

			reg, err := analyze.NewAnalyzer().LoadPackages(patterns...)
			if err != nil {
				return err
			}

			recs, err := scaffoldRecords(reg, args)
			if err != nil {
				return err
			}

			m := &bindings.Manifest{Version: bindings.SupportedVersion}
			for _, rec := range recs {
				m.Bindings = append(m.Bindings, bindings.RecordBinding{
					Record: rec.ID.String(),
					Target: target,
					Ignore: rec.Names(),
				})

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fields to cover\n", rec.ID, len(rec.Fields))
			}

			if err := bindings.WriteFile(m, bindingsPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "wrote", bindingsPath)

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", []string{"./..."}, "package patterns to load")
	cmd.Flags().StringVarP(&bindingsPath, "bindings", "b", "bindings.yaml", "path of the manifest to write")
	cmd.Flags().StringVar(&target, "target", "any", "handler result type for the scaffolded bindings")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing manifest")

	return cmd
}

// scaffoldRecords picks the records to scaffold: the named ones, or
// every record in the loaded packages.
func scaffoldRecords(reg *analyze.Registry, refs []string) ([]*analyze.RecordInfo, error) {
	if len(refs) == 0 {
		recs := reg.Records()
		if len(recs) == 0 {
			return nil, errors.New("no record types found in the loaded packages")
		}

		return recs, nil
	}

	out := make([]*analyze.RecordInfo, 0, len(refs))

	for _, ref := range refs {
		rec, err := reg.Resolve(ref)
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, nil
}
