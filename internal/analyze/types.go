package analyze

import (
	"go/types"
	"reflect"
	"sort"
)

// Ident uniquely identifies a package-level declaration by its package
// path and name.
type Ident struct {
	PkgPath string // e.g., "fieldbind/movies"
	Name    string // e.g., "Filter"
}

// String returns a human-readable representation of the Ident.
func (id Ident) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// FieldInfo describes one declared (exported) field of a record type.
type FieldInfo struct {
	Name     string            // Go field name
	Index    int               // Field index in the struct
	Optional bool              // Pointer-typed fields may be absent
	Embedded bool              // Whether the field is embedded (anonymous)
	Type     types.Type        // Field type
	Elem     types.Type        // Pointee for optional fields, Type otherwise
	Tag      reflect.StructTag // Raw struct tag
}

// GetTag returns the value of the specified tag key.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// RecordInfo describes a record type: a named type whose underlying type
// is a struct. Fields holds the exported fields in declaration order;
// unexported field names are kept separately so diagnostics can tell
// "not exported" from "not found".
type RecordInfo struct {
	ID         Ident
	Type       types.Type // the named type itself
	Fields     []FieldInfo
	Unexported []string
}

// Field returns the named declared field.
func (r *RecordInfo) Field(name string) (FieldInfo, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldInfo{}, false
}

// HasUnexported reports whether name is an unexported field of the record.
func (r *RecordInfo) HasUnexported(name string) bool {
	for _, n := range r.Unexported {
		if n == name {
			return true
		}
	}

	return false
}

// Names returns the declared field names sorted byte-wise.
func (r *RecordInfo) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}

	sort.Strings(names)
	return names
}

// FuncInfo describes a package-level function usable as a handler.
type FuncInfo struct {
	ID        Ident
	Signature *types.Signature
}

// Registry indexes the record types, named non-record types, and
// package-level functions of the loaded packages.
type Registry struct {
	records  map[Ident]*RecordInfo
	others   map[Ident]string // named non-record types -> kind word
	funcs    map[Ident]*FuncInfo
	named    map[Ident]types.Type // every named type, for target resolution
	packages map[string]*PackageInfo
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		records:  make(map[Ident]*RecordInfo),
		others:   make(map[Ident]string),
		funcs:    make(map[Ident]*FuncInfo),
		named:    make(map[Ident]types.Type),
		packages: make(map[string]*PackageInfo),
	}
}

// AddRecord indexes a record type.
func (g *Registry) AddRecord(r *RecordInfo) {
	g.records[r.ID] = r
	if r.Type != nil {
		g.named[r.ID] = r.Type
	}
}

// AddNamed indexes a named non-record type under a kind word
// ("slice", "basic", ...) used by not-a-record diagnostics.
func (g *Registry) AddNamed(id Ident, t types.Type, kind string) {
	g.others[id] = kind
	if t != nil {
		g.named[id] = t
	}
}

// AddFunc indexes a package-level function.
func (g *Registry) AddFunc(f *FuncInfo) {
	g.funcs[f.ID] = f
}

// AddPackage indexes a loaded package.
func (g *Registry) AddPackage(p *PackageInfo) {
	g.packages[p.Path] = p
}

// Record returns the record with the given identifier, or nil.
func (g *Registry) Record(id Ident) *RecordInfo {
	return g.records[id]
}

// Func returns the function with the given identifier, or nil.
func (g *Registry) Func(id Ident) *FuncInfo {
	return g.funcs[id]
}

// Records returns all records sorted by identifier.
func (g *Registry) Records() []*RecordInfo {
	out := make([]*RecordInfo, 0, len(g.records))
	for _, r := range g.records {
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

// RecordNames returns all record identifiers as strings, sorted.
// Used for suggestions on unknown record references.
func (g *Registry) RecordNames() []string {
	out := make([]string, 0, len(g.records))
	for id := range g.records {
		out = append(out, id.String())
	}

	sort.Strings(out)
	return out
}

// Package returns the loaded package at path, or nil.
func (g *Registry) Package(path string) *PackageInfo {
	return g.packages[path]
}

// Packages returns the loaded packages sorted by path.
func (g *Registry) Packages() []*PackageInfo {
	out := make([]*PackageInfo, 0, len(g.packages))
	for _, p := range g.packages {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string  // Import path
	Name    string  // Package name
	Records []Ident // Record types defined in this package
}
