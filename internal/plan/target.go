package plan

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"fieldbind/internal/analyze"
)

// ParseTarget resolves a target type expression against the registry.
// The grammar is a chain of "*" and "[]" prefixes ending in a universe
// builtin ("string", "error", "any", ...) or a named type reference
// resolved like a record reference ("movies.Clause").
func ParseTarget(reg *analyze.Registry, expr string) (types.Type, error) {
	s := strings.TrimSpace(expr)

	switch {
	case s == "":
		return nil, errors.New("empty target type")

	case strings.HasPrefix(s, "*"):
		elem, err := ParseTarget(reg, s[1:])
		if err != nil {
			return nil, err
		}

		return types.NewPointer(elem), nil

	case strings.HasPrefix(s, "[]"):
		elem, err := ParseTarget(reg, s[2:])
		if err != nil {
			return nil, err
		}

		return types.NewSlice(elem), nil
	}

	if obj := types.Universe.Lookup(s); obj != nil {
		if tn, ok := obj.(*types.TypeName); ok {
			return tn.Type(), nil
		}

		return nil, fmt.Errorf("%q is not a type", s)
	}

	return reg.ResolveNamed(s)
}

// nilable reports whether t can express an absent value. Mirrors the
// runtime rule for optional targets.
func nilable(t types.Type) bool {
	switch t.Underlying().(type) {
	default:
		return false
	case *types.Pointer, *types.Interface, *types.Slice, *types.Map, *types.Chan, *types.Signature:
		return true
	}
}
