// Package analyze provides package loading and record discovery.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory registry of the record types, named types, and package-level
// functions that binding manifests may reference.
//
// Key types:
//   - Ident: package import path + declaration name
//   - RecordInfo: a struct type with its exported fields in declaration order
//   - FieldInfo: field name, index, type, optionality, and embedding
//   - Registry: lookup by exact path, package name, or bare name
package analyze
