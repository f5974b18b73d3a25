package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrNotRecord = errors.New("not a record type")
	ErrAmbiguous = errors.New("ambiguous reference")
)

// Resolve finds the record type named by ref. Accepted forms:
//   - "fieldbind/movies.Filter" (full import path)
//   - "movies.Filter" (package name)
//   - "Filter" (bare name, when unique)
//
// A ref that names a known non-record type fails with ErrNotRecord and
// the type's kind; unknown refs fail with ErrNotFound; refs matching
// more than one record fail with ErrAmbiguous listing the candidates.
func (g *Registry) Resolve(ref string) (*RecordInfo, error) {
	ids := g.match(ref, func(id Ident) bool {
		_, ok := g.records[id]
		return ok
	})

	switch len(ids) {
	case 1:
		return g.records[ids[0]], nil

	case 0:
		// Distinguish "no such name" from "named, but not a record".
		if others := g.match(ref, func(id Ident) bool {
			_, ok := g.others[id]
			return ok
		}); len(others) > 0 {
			return nil, fmt.Errorf("%s is %w (kind: %s)", others[0], ErrNotRecord, g.others[others[0]])
		}

		return nil, fmt.Errorf("record type %q %w", ref, ErrNotFound)

	default:
		return nil, fmt.Errorf("record type %q is %w: %s", ref, ErrAmbiguous, identList(ids))
	}
}

// ResolveNamed finds any named type (record or not) by ref, for target
// type resolution.
func (g *Registry) ResolveNamed(ref string) (types.Type, error) {
	ids := g.match(ref, func(id Ident) bool {
		_, ok := g.named[id]
		return ok
	})

	switch len(ids) {
	case 1:
		return g.named[ids[0]], nil
	case 0:
		return nil, fmt.Errorf("type %q %w", ref, ErrNotFound)
	default:
		return nil, fmt.Errorf("type %q is %w: %s", ref, ErrAmbiguous, identList(ids))
	}
}

// ResolveFunc finds the handler function named by ref. Bare names are
// looked up in defaultPkg (usually the record's package).
func (g *Registry) ResolveFunc(ref, defaultPkg string) (*FuncInfo, error) {
	if !strings.Contains(ref, ".") {
		if f := g.funcs[Ident{PkgPath: defaultPkg, Name: ref}]; f != nil {
			return f, nil
		}

		return nil, fmt.Errorf("func %q %w in %s", ref, ErrNotFound, defaultPkg)
	}

	ids := g.match(ref, func(id Ident) bool {
		_, ok := g.funcs[id]
		return ok
	})

	switch len(ids) {
	case 1:
		return g.funcs[ids[0]], nil
	case 0:
		return nil, fmt.Errorf("func %q %w", ref, ErrNotFound)
	default:
		return nil, fmt.Errorf("func %q is %w: %s", ref, ErrAmbiguous, identList(ids))
	}
}

// FuncNames returns the names of the functions declared in pkgPath,
// sorted. Used for suggestions on unknown handler references.
func (g *Registry) FuncNames(pkgPath string) []string {
	var out []string
	for id := range g.funcs {
		if id.PkgPath == pkgPath {
			out = append(out, id.Name)
		}
	}

	sort.Strings(out)
	return out
}

// match collects the identifiers accepted by keep that ref could mean,
// deterministically ordered.
func (g *Registry) match(ref string, keep func(Ident) bool) []Ident {
	lastDot := strings.LastIndex(ref, ".")

	// Bare name: every declaration called that.
	if lastDot < 0 {
		if ref == "" {
			return nil
		}

		var ids []Ident
		for path := range g.packages {
			id := Ident{PkgPath: path, Name: ref}
			if keep(id) {
				ids = append(ids, id)
			}
		}

		sortIdents(ids)
		return ids
	}

	pkgStr, name := ref[:lastDot], ref[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil
	}

	// Exact import path match wins outright.
	if id := (Ident{PkgPath: pkgStr, Name: name}); keep(id) {
		return []Ident{id}
	}

	// Package-name match, e.g. "movies.Filter" for "fieldbind/movies.Filter".
	var ids []Ident
	for path, p := range g.packages {
		if p.Name != pkgStr && !strings.HasSuffix(path, "/"+pkgStr) {
			continue
		}

		id := Ident{PkgPath: path, Name: name}
		if keep(id) {
			ids = append(ids, id)
		}
	}

	sortIdents(ids)
	return ids
}

func sortIdents(ids []Ident) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}

func identList(ids []Ident) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, ", ")
}
