package bind

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Evaluator maps a record instance to one result per bound field.
// Evaluators are produced exclusively by Finalize, are immutable, and are
// safe for concurrent use as long as the handlers are.
type Evaluator[R, T any] struct {
	fields   []string
	handlers map[string]func(R) T
}

// Finalize seals the accumulator. It fails if any wiring error was
// accumulated along the chain, or if any declared field is left
// uncovered; the completeness error names every missing field, sorted,
// not just the first. On success the evaluation order is fixed: bound
// field names sorted byte-wise.
func (a Accumulator[R, T]) Finalize() (Evaluator[R, T], error) {
	if err := a.Err(); err != nil {
		return Evaluator[R, T]{}, err
	}

	if a.poisoned() {
		return Evaluator[R, T]{}, errors.New("uninitialized accumulator: start with Build")
	}

	if missing := a.Missing(); len(missing) > 0 {
		return Evaluator[R, T]{}, fmt.Errorf("%w for %s: %s",
			ErrMissingFieldHandlers, a.set.Type(), strings.Join(missing, ", "))
	}

	fields := make([]string, 0, len(a.handlers))
	for f := range a.handlers {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	return Evaluator[R, T]{
		fields:   fields,
		handlers: maps.Clone(a.handlers),
	}, nil
}

// Must returns ev or panics on err. It keeps wiring one expression at
// package init:
//
//	var eval = bind.Must(bind.Build[Rec, Out]().Bind(...).Finalize())
func Must[R, T any](ev Evaluator[R, T], err error) Evaluator[R, T] {
	if err != nil {
		panic(err)
	}

	return ev
}

// Eval invokes each bound handler exactly once with rec's corresponding
// field value and returns the results ordered byte-wise by field name.
// Absent optional fields yield the zero T without a handler call;
// ignored fields yield nothing. Handler panics propagate unmodified.
func (e Evaluator[R, T]) Eval(rec R) []T {
	out := make([]T, 0, len(e.fields))
	for _, f := range e.fields {
		out = append(out, e.handlers[f](rec))
	}

	return out
}

// Fields returns the evaluation order: the bound field names sorted
// byte-wise. Ignored fields are not listed.
func (e Evaluator[R, T]) Fields() []string {
	return slices.Clone(e.fields)
}
