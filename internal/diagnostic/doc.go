// Package diagnostic provides structured findings for the binding checker.
//
// Key capabilities:
//   - Stable error codes for every way a manifest can be rejected
//   - Record and field attribution on each finding
//   - Near-miss name suggestions on unknown identifiers
//   - Combined Error() for callers that just need pass/fail
package diagnostic
