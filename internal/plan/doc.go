// Package plan provides the resolution pipeline that turns a bindings
// manifest into a generation Plan.
//
// Resolution pipeline:
//  1. Analyze packages -> declaration registry
//  2. Load the YAML manifest
//  3. For each record binding:
//     - Resolve the record reference and target type
//     - Admit each handler and ignore entry (selector syntax,
//       membership, duplicates, optionality, handler signature)
//     - Check completeness: every declared field must be covered
//  4. Emit diagnostics (one missing-handlers report lists every
//     uncovered field, with near-miss suggestions for typos)
package plan
