// Package record extracts field registries from record (struct) types.
//
// A registry is the complete set of a type's declared fields: the exported
// ones. Unexported fields and methods are auxiliary members and never
// appear in a registry, so adding them to a type changes nothing for
// callers that account for fields.
package record

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrNotRecord reports that a type has no declared fields to enumerate.
// Only struct types are records; pointers to structs are not.
var ErrNotRecord = errors.New("not a record type")

// Field describes one declared field of a record type.
type Field struct {
	// Name is the exported field name, unique within the record.
	Name string

	// Index is the field's position among the struct's fields.
	Index int

	// Type is the field's declared type.
	Type reflect.Type

	// Optional reports whether the field is pointer-typed and may
	// therefore be absent on a record instance.
	Optional bool

	// Embedded reports whether the field was declared without an
	// explicit name. Embedded fields are regular registry entries
	// under their type name.
	Embedded bool
}

// Elem returns the value type carried by an optional field, or the field
// type itself for non-optional fields.
func (f Field) Elem() reflect.Type {
	if f.Optional {
		return f.Type.Elem()
	}
	return f.Type
}

// Set is the field registry of a single record type. A Set is immutable
// once extracted; accessors return copies.
type Set struct {
	typ    reflect.Type
	fields []Field
	index  map[string]int
}

// FieldsOf extracts the field registry of t.
// It fails with ErrNotRecord for nil and for every non-struct type.
func FieldsOf(t reflect.Type) (Set, error) {
	if t == nil {
		return Set{}, fmt.Errorf("nil type is %w", ErrNotRecord)
	}

	if t.Kind() != reflect.Struct {
		return Set{}, fmt.Errorf("type %s is %w (kind: %s)", t, ErrNotRecord, t.Kind())
	}

	s := Set{
		typ:   t,
		index: make(map[string]int),
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		s.index[sf.Name] = len(s.fields)
		s.fields = append(s.fields, Field{
			Name:     sf.Name,
			Index:    i,
			Type:     sf.Type,
			Optional: sf.Type.Kind() == reflect.Ptr,
			Embedded: sf.Anonymous,
		})
	}

	return s, nil
}

// Of is the generic form of FieldsOf.
func Of[R any]() (Set, error) {
	return FieldsOf(reflect.TypeOf((*R)(nil)).Elem())
}

// Type returns the record type the registry was extracted from,
// or nil for the zero Set.
func (s Set) Type() reflect.Type { return s.typ }

// Len returns the number of declared fields.
func (s Set) Len() int { return len(s.fields) }

// Names returns the field names sorted byte-wise.
func (s Set) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}

	sort.Strings(names)
	return names
}

// Fields returns the declared fields in declaration order.
func (s Set) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the named field and whether it is declared.
func (s Set) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Contains reports whether name is a declared field.
func (s Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}
