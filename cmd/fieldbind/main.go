// Package main provides the CLI entrypoint for fieldbind.
//
// fieldbind makes per-field handler wiring a build-time gate:
//   - Parses Go packages (go/types) to index record types and handlers
//   - Validates a YAML bindings manifest against the loaded declarations
//   - Fails when any record field is left without a handler or ignore
//   - Generates the evaluator wiring as code, re-asserted at init time
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
