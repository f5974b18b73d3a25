package bindings

import "strings"

// Manifest represents the root of a YAML bindings file.
// This is the authoritative, human-reviewed declaration of which handler
// covers each field of a record type.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Bindings is a list of per-record binding declarations.
	Bindings []RecordBinding `yaml:"bindings"`
}

// RecordBinding declares the handler set for one record type.
type RecordBinding struct {
	// Record names the record type (e.g., "movies.Filter" or full path).
	Record string `yaml:"record"`

	// Target is the handler result type expression
	// (e.g., "*movies.Clause", "string").
	Target string `yaml:"target"`

	// Output controls the generated package and constructor names.
	Output OutputSpec `yaml:"output,omitempty"`

	// Handlers lists one handler per bound field.
	Handlers []HandlerSpec `yaml:"handlers,omitempty"`

	// Ignore lists fields deliberately left without a handler, as a
	// single name or a list. Ignored fields count as covered but
	// produce no evaluator output.
	Ignore FieldList `yaml:"ignore,omitempty"`
}

// RecordName returns the bare type name of the record reference.
func (b *RecordBinding) RecordName() string {
	if i := strings.LastIndex(b.Record, "."); i >= 0 {
		return b.Record[i+1:]
	}

	return b.Record
}

// OutputSpec controls naming in the generated file.
type OutputSpec struct {
	// Package is the generated package name.
	// Defaults to the generator's configured package name.
	Package string `yaml:"package,omitempty"`

	// Constructor is the generated constructor name.
	// Defaults to New<Record>Evaluator.
	Constructor string `yaml:"constructor,omitempty"`
}

// HandlerSpec binds one field to one handler function.
type HandlerSpec struct {
	// Field selects the bound field: exactly one field name, no paths.
	Field string `yaml:"field"`

	// Func references the handler function, bare ("YearClause", looked
	// up in the record's package) or qualified ("pkg/path.Func").
	Func string `yaml:"func"`

	// Optional marks a pointer field whose handler takes the element
	// value; nil fields skip the handler and yield the zero target.
	Optional bool `yaml:"optional,omitempty"`
}
