// Package gen renders resolved binding plans as Go source.
//
// Generation uses text/template + go/format for readable, deterministic
// output. Plans carrying error diagnostics are refused; a binding set
// that is not provably complete never reaches the filesystem.
//
// Emitted per record:
//   - one string constant per covered field (the selector vocabulary)
//   - a constructor returning bind.Evaluator[R, T] that chains every
//     handler through the accumulator and seals it under bind.Must, so
//     the completeness proof is re-run when the package initializes
package gen
