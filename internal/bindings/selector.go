package bindings

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ParseSelector validates a field selector and returns the field name.
// Selectors name exactly one field of the record: path expressions,
// element expressions, and anything that is not a plain identifier are
// rejected.
func ParseSelector(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty field selector")
	}

	if strings.Contains(s, ".") {
		return "", fmt.Errorf("selector %q must name a single field, not a path", s)
	}

	if strings.Contains(s, "[") || strings.Contains(s, "]") {
		return "", fmt.Errorf("selector %q must name a single field, not an element", s)
	}

	if !isValidIdent(s) {
		return "", fmt.Errorf("selector %q is not a valid field name", s)
	}

	return s, nil
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}

			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return s != ""
}
