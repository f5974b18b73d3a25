// Package bindings provides the YAML manifest schema and parsing for
// field-to-handler declarations.
//
// A manifest pins, per record type, the handler covering each field.
// It is the reviewed source of truth the fieldbind command checks for
// completeness and compiles into evaluator wiring.
//
// # Key capabilities
//
//   - One handler per field, enforced downstream
//   - Optional-field handlers taking the element value
//   - Ignore list for fields deliberately left unbound
//   - Output package/constructor overrides
//   - Strict parsing: unknown keys are errors
//
// # Schema Overview
//
// The bindings file has the following structure:
//
//	version: "1"
//	bindings:
//	  - record: movies.Filter
//	    target: "*movies.Clause"
//	    handlers:
//	      - field: DirectorEq
//	        func: DirectorClause
//	        optional: true
//	      - field: RatingGte
//	        func: RatingClause
//	        optional: true
//	    ignore:
//	      - Debug
//	    output:
//	      package: evaluators
//	      constructor: NewFilterEvaluator
package bindings
