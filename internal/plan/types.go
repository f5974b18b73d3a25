package plan

import (
	"go/types"

	"fieldbind/internal/analyze"
	"fieldbind/internal/diagnostic"
)

// Plan is the fully resolved form of a bindings manifest: every record
// reference, field selector, and handler function pinned to a loaded
// declaration, with completeness already proven.
type Plan struct {
	// Records holds one entry per resolvable record binding.
	Records []ResolvedRecord

	// Registry is the registry the plan was resolved against; the
	// generator uses it to qualify type references.
	Registry *analyze.Registry

	// Diagnostics collected during resolution. A plan with error
	// diagnostics must not be fed to the generator.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedRecord is one record binding ready for code generation.
type ResolvedRecord struct {
	// Record is the resolved record type.
	Record *analyze.RecordInfo

	// Target is the resolved handler result type.
	Target types.Type

	// Package is the output package name requested by the manifest.
	// Empty means the generator's configured default applies.
	Package string

	// Constructor is the generated constructor name.
	Constructor string

	// Handlers holds the resolved handler bindings sorted by field
	// name; this is also the evaluation order.
	Handlers []ResolvedHandler

	// Ignored lists the deliberately unbound fields, sorted.
	Ignored []string

	// Imports lists the packages the generated wiring references,
	// sorted. The bind package itself is not included.
	Imports []string
}

// ResolvedHandler pins one field to one handler function.
type ResolvedHandler struct {
	Field    analyze.FieldInfo
	Func     *analyze.FuncInfo
	Optional bool
}
