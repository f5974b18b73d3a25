package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"fieldbind/internal/gen"
)

func newGenCmd() *cobra.Command {
	var (
		patterns     []string
		bindingsPath string
		outDir       string
		pkgName      string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate evaluator wiring from a bindings manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveManifest(patterns, bindingsPath, strict)
			if err != nil {
				return err
			}

			if err := reportDiagnostics(cmd.ErrOrStderr(), &p.Diagnostics); err != nil {
				return err
			}

			cfg := gen.DefaultGeneratorConfig()
			cfg.OutputDir = outDir
			cfg.PackageName = pkgName

			files, err := gen.NewGenerator(cfg).Generate(p)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files, outDir); err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outDir, f.Filename))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", []string{"./..."}, "package patterns to load")
	cmd.Flags().StringVarP(&bindingsPath, "bindings", "b", "bindings.yaml", "path to the bindings manifest")
	cmd.Flags().StringVarP(&outDir, "out", "o", "./generated", "output directory for generated files")
	cmd.Flags().StringVar(&pkgName, "package", "evaluators", "package name for generated files")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
