// Package bind accumulates per-field handlers for a record type and
// refuses to produce an evaluator until every declared field is covered.
//
// An Accumulator is built for a record type R and a target type T, grows
// one handler per field through Bind/BindOptional (or a deliberate Ignore),
// and is sealed by Finalize. Finalize fails unless the set of covered
// field names exactly equals the record's field registry, naming every
// missing field. The resulting Evaluator maps a record instance to one
// result per bound field, ordered byte-wise by field name.
//
// Accumulators are immutable values: every method returns a derived copy,
// so chains forked from a common prefix never interfere. Wiring mistakes
// (bad selectors, duplicate handlers, handler type mismatches) accumulate
// silently along the chain and surface together at Finalize; they never
// occur during Eval.
//
// The check performed here runs once at wiring time, typically inside a
// package-level var via Must. The fieldbind command makes the same check a
// build-time gate by validating a bindings manifest and generating the
// wiring below as source code.
package bind

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"unicode"

	"fieldbind/record"
)

// Accumulator collects handler bindings for record type R producing
// values of target type T. The zero value is unusable; start with Build.
type Accumulator[R, T any] struct {
	set      record.Set
	target   reflect.Type
	seen     map[string]Kind
	handlers map[string]func(R) T
	errs     []error
}

// Build starts an empty accumulator for R and T. If R is not a record
// type the error is carried by the accumulator and reported at Finalize.
func Build[R, T any]() Accumulator[R, T] {
	a := Accumulator[R, T]{
		target:   reflect.TypeOf((*T)(nil)).Elem(),
		seen:     make(map[string]Kind),
		handlers: make(map[string]func(R) T),
	}

	set, err := record.Of[R]()
	if err != nil {
		a.errs = []error{err}
		return a
	}

	a.set = set
	return a
}

// Bind covers field with fn, which must be a func taking the field's
// value and returning T. All wiring problems accumulate and surface at
// Finalize; the chain itself never stops.
func (a Accumulator[R, T]) Bind(field string, fn any) Accumulator[R, T] {
	if a.poisoned() {
		return a
	}

	f, err := a.lookup(field)
	if err != nil {
		return a.fail(err)
	}

	h, err := a.parseHandler(f, fn, false)
	if err != nil {
		return a.fail(err)
	}

	return a.cover(field, KindBind, h)
}

// BindOptional covers an optional (pointer-typed) field with fn, which
// takes the field's element value. When the field is nil on a record
// instance the evaluator yields the zero T for it without invoking fn,
// so T itself must be able to express absence (pointer, interface,
// slice, map, chan or func).
func (a Accumulator[R, T]) BindOptional(field string, fn any) Accumulator[R, T] {
	if a.poisoned() {
		return a
	}

	f, err := a.lookup(field)
	if err != nil {
		return a.fail(err)
	}

	if !f.Optional {
		return a.fail(fmt.Errorf("%w: field %q is %s", ErrFieldNotOptional, field, f.Type))
	}

	if !nilable(a.target) {
		return a.fail(fmt.Errorf("%w: %s cannot express an absent result", ErrTargetNotOptional, a.target))
	}

	h, err := a.parseHandler(f, fn, true)
	if err != nil {
		return a.fail(err)
	}

	return a.cover(field, KindBindOptional, h)
}

// Ignore covers field without a handler. Ignored fields produce no
// evaluator output, and binding one later is a duplicate.
func (a Accumulator[R, T]) Ignore(field string) Accumulator[R, T] {
	if a.poisoned() {
		return a
	}

	if _, err := a.lookup(field); err != nil {
		return a.fail(err)
	}

	return a.cover(field, KindIgnore, nil)
}

// Bound returns the covered fields sorted by name.
func (a Accumulator[R, T]) Bound() []Binding {
	out := make([]Binding, 0, len(a.seen))
	for f, k := range a.seen {
		out = append(out, Binding{Field: f, Kind: k})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// Missing returns the declared fields not yet covered, sorted byte-wise.
func (a Accumulator[R, T]) Missing() []string {
	var missing []string
	for _, name := range a.set.Names() {
		if _, ok := a.seen[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// Err returns the wiring errors accumulated so far, joined, or nil.
// Completeness is not checked here; that is Finalize's job.
func (a Accumulator[R, T]) Err() error {
	return errors.Join(a.errs...)
}

func (a Accumulator[R, T]) poisoned() bool {
	return a.set.Type() == nil
}

// lookup validates the selector syntax, membership and uniqueness.
func (a Accumulator[R, T]) lookup(field string) (record.Field, error) {
	if !isIdent(field) {
		return record.Field{}, fmt.Errorf("%w: %q is not a single field name", ErrInvalidFieldSelector, field)
	}

	f, ok := a.set.Lookup(field)
	if !ok {
		if sf, found := a.set.Type().FieldByName(field); found && !sf.IsExported() {
			return record.Field{}, fmt.Errorf("%w: field %q is not exported", ErrInvalidFieldSelector, field)
		}

		return record.Field{}, fmt.Errorf("%w: field %q not found in %s", ErrInvalidFieldSelector, field, a.set.Type())
	}

	if k, dup := a.seen[field]; dup {
		return record.Field{}, fmt.Errorf("%w: field %q already covered by %s", ErrDuplicateFieldHandler, field, k)
	}

	return f, nil
}

// parseHandler inspects fn and adapts it to take the full record,
// projecting the field internally.
func (a Accumulator[R, T]) parseHandler(f record.Field, fn any, optional bool) (func(R) T, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil handler for field %q", ErrInvalidHandler, f.Name)
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: handler for field %q is %s, not a func", ErrInvalidHandler, f.Name, fnType.Kind())
	}

	if fnType.IsVariadic() || fnType.NumIn() != 1 || fnType.NumOut() != 1 {
		return nil, fmt.Errorf("%w: handler for field %q must be func(fieldValue) target", ErrInvalidHandler, f.Name)
	}

	in := f.Type
	if optional {
		in = f.Type.Elem()
	}

	if !in.AssignableTo(fnType.In(0)) {
		return nil, fmt.Errorf("%w: handler for field %q takes %s, field value is %s", ErrInvalidHandler, f.Name, fnType.In(0), in)
	}

	if out := fnType.Out(0); !resultCompatible(out, a.target) {
		return nil, fmt.Errorf("%w: handler for field %q returns %s, want %s", ErrInvalidHandler, f.Name, out, a.target)
	}

	idx := f.Index
	if optional {
		return func(rec R) T {
			v := reflect.ValueOf(rec).Field(idx)
			if v.IsNil() {
				var absent T
				return absent
			}

			return fnVal.Call([]reflect.Value{v.Elem()})[0].Interface().(T)
		}, nil
	}

	return func(rec R) T {
		v := reflect.ValueOf(rec).Field(idx)
		return fnVal.Call([]reflect.Value{v})[0].Interface().(T)
	}, nil
}

// cover returns a copy with field marked as seen and, for bind kinds,
// its adapted handler recorded.
func (a Accumulator[R, T]) cover(field string, k Kind, h func(R) T) Accumulator[R, T] {
	c := a.clone()
	c.seen[field] = k
	if h != nil {
		c.handlers[field] = h
	}

	return c
}

func (a Accumulator[R, T]) fail(err error) Accumulator[R, T] {
	c := a.clone()
	c.errs = append(c.errs, err)
	return c
}

func (a Accumulator[R, T]) clone() Accumulator[R, T] {
	c := a
	c.seen = maps.Clone(a.seen)
	c.handlers = maps.Clone(a.handlers)
	c.errs = slices.Clone(a.errs)

	if c.seen == nil {
		c.seen = make(map[string]Kind)
	}
	if c.handlers == nil {
		c.handlers = make(map[string]func(R) T)
	}

	return c
}

// resultCompatible reports whether a handler result of type out can be
// taken as the target type: identical, or implementing an interface target.
func resultCompatible(out, target reflect.Type) bool {
	if out == target {
		return true
	}

	return target.Kind() == reflect.Interface && out.Implements(target)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
}

func isIdent(s string) bool {
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
