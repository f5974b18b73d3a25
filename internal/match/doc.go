// Package match provides name normalization, Levenshtein distance
// calculation, and near-miss suggestion ranking for diagnostics.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks registry names closest to an unknown one
package match
