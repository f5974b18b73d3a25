package main

import (
	"fmt"
	"io"

	"fieldbind/internal/analyze"
	"fieldbind/internal/bindings"
	"fieldbind/internal/diagnostic"
	"fieldbind/internal/plan"
)

// resolveManifest runs the shared load-parse-resolve pipeline: index the
// packages, read the manifest, and pin every binding to a declaration.
func resolveManifest(patterns []string, bindingsPath string, strict bool) (*plan.Plan, error) {
	reg, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	m, err := bindings.LoadFile(bindingsPath)
	if err != nil {
		return nil, err
	}

	cfg := plan.DefaultConfig()
	cfg.Strict = strict

	return plan.NewResolver(reg, m, cfg).Resolve()
}

// reportDiagnostics prints every finding to w and returns an error when
// the manifest failed validation.
func reportDiagnostics(w io.Writer, d *diagnostic.Diagnostics) error {
	for _, info := range d.Infos {
		fmt.Fprintln(w, "info:", info)
	}

	for _, warn := range d.Warnings {
		fmt.Fprintln(w, "warning:", warn)
	}

	for _, e := range d.Errors {
		fmt.Fprintln(w, "error:", e)
	}

	if d.HasErrors() {
		return fmt.Errorf("bindings manifest failed validation with %d error(s)", len(d.Errors))
	}

	return nil
}
