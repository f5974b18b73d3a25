package bindings

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fieldbind/internal/common"
)

// FieldList is a list of field names that unmarshals from either a
// single YAML string or a sequence of strings, so a lone ignored field
// needs no list syntax:
//
//	ignore: ID
//	ignore: [ID, MemberID]
type FieldList []string

// UnmarshalYAML implements custom YAML unmarshaling for FieldList.
// Accepts either a single string or an array of strings.
func (f *FieldList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*f = FieldList{str}
		} else {
			*f = FieldList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*f = arr

		return nil

	default:
		return fmt.Errorf("expected field name or array of field names, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for FieldList.
// Outputs a single string if length is 1, otherwise an array.
func (f FieldList) MarshalYAML() (any, error) {
	if v, ok := common.First(f); ok && common.IsSingle(f) {
		return v, nil
	}

	return []string(f), nil
}

// IsEmpty returns true if the list is empty.
func (f FieldList) IsEmpty() bool {
	return common.IsEmpty(f)
}
