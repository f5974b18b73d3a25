package analyze

import (
	"go/types"
	"sort"
)

// Qualifier returns a types.Qualifier that renders package references
// through an alias table (import path -> local name). Paths missing
// from the table fall back to the package's declared name; a nil table
// always uses declared names, which suits diagnostics.
func Qualifier(aliases map[string]string) types.Qualifier {
	return func(p *types.Package) string {
		if alias, ok := aliases[p.Path()]; ok {
			return alias
		}

		return p.Name()
	}
}

// TypeImports collects the import paths of every named type mentioned
// by t, sorted. Builtins contribute nothing.
func TypeImports(t types.Type) []string {
	seen := make(map[string]struct{})
	collectImports(t, seen)

	out := make([]string, 0, len(seen))
	for path := range seen {
		out = append(out, path)
	}

	sort.Strings(out)
	return out
}

func collectImports(t types.Type, seen map[string]struct{}) {
	switch tt := t.(type) {
	case *types.Named:
		if pkg := tt.Obj().Pkg(); pkg != nil {
			seen[pkg.Path()] = struct{}{}
		}

	case *types.Pointer:
		collectImports(tt.Elem(), seen)

	case *types.Slice:
		collectImports(tt.Elem(), seen)

	case *types.Array:
		collectImports(tt.Elem(), seen)

	case *types.Map:
		collectImports(tt.Key(), seen)
		collectImports(tt.Elem(), seen)

	case *types.Chan:
		collectImports(tt.Elem(), seen)

	case *types.Signature:
		for i := 0; i < tt.Params().Len(); i++ {
			collectImports(tt.Params().At(i).Type(), seen)
		}

		for i := 0; i < tt.Results().Len(); i++ {
			collectImports(tt.Results().At(i).Type(), seen)
		}
	}
}
