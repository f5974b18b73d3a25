package analyze

import (
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds the declaration registry.
type Analyzer struct {
	reg *Registry
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		reg: NewRegistry(),
	}
}

// LoadPackages loads the specified packages and indexes their record
// types, named types, and package-level functions.
// Patterns are standard Go package patterns (e.g., "./movies", "fieldbind/rentals").
func (a *Analyzer) LoadPackages(patterns ...string) (*Registry, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.reg, nil
}

// Registry returns the current registry.
func (a *Analyzer) Registry() *Registry {
	return a.reg
}

// processPackage indexes the exported package-level declarations.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		id := Ident{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		switch decl := obj.(type) {
		case *types.TypeName:
			if st, ok := decl.Type().Underlying().(*types.Struct); ok {
				a.reg.AddRecord(analyzeRecord(id, decl.Type(), st))
				pkgInfo.Records = append(pkgInfo.Records, id)

				continue
			}

			a.reg.AddNamed(id, decl.Type(), kindWord(decl.Type()))

		case *types.Func:
			sig, ok := decl.Type().(*types.Signature)
			if !ok || sig.Recv() != nil {
				continue
			}

			a.reg.AddFunc(&FuncInfo{ID: id, Signature: sig})
		}
	}

	a.reg.AddPackage(pkgInfo)
}

// analyzeRecord extracts the field registry of a struct type. Exported
// fields become registry entries; unexported names are kept for
// diagnostics only.
func analyzeRecord(id Ident, named types.Type, st *types.Struct) *RecordInfo {
	info := &RecordInfo{
		ID:   id,
		Type: named,
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if !field.Exported() {
			info.Unexported = append(info.Unexported, field.Name())
			continue
		}

		ft := field.Type()
		elem := ft
		optional := false
		if ptr, ok := ft.Underlying().(*types.Pointer); ok {
			optional = true
			elem = ptr.Elem()
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Index:    i,
			Optional: optional,
			Embedded: field.Embedded(),
			Type:     ft,
			Elem:     elem,
			Tag:      reflect.StructTag(st.Tag(i)),
		})
	}

	return info
}

// kindWord classifies a non-record type for diagnostics,
// e.g. "fieldbind/rentals.Tags is not a record type (kind: slice)".
func kindWord(t types.Type) string {
	switch t.Underlying().(type) {
	default:
		return "unknown"
	case *types.Basic:
		return "basic"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Map:
		return "map"
	case *types.Pointer:
		return "pointer"
	case *types.Interface:
		return "interface"
	case *types.Signature:
		return "func"
	case *types.Chan:
		return "chan"
	}
}
