package plan

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strings"

	"fieldbind/internal/analyze"
	"fieldbind/internal/bindings"
	"fieldbind/internal/diagnostic"
	"fieldbind/internal/match"
)

// Config holds configuration for manifest resolution.
type Config struct {
	// Strict promotes warnings to errors.
	Strict bool
	// MaxSuggestions caps near-miss suggestions per diagnostic.
	MaxSuggestions int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		Strict:         false,
		MaxSuggestions: 3,
	}
}

// Resolver validates a bindings manifest against loaded packages and
// produces the generation plan.
type Resolver struct {
	reg      *analyze.Registry
	manifest *bindings.Manifest
	config   Config
}

// NewResolver creates a new Resolver.
func NewResolver(reg *analyze.Registry, manifest *bindings.Manifest, config Config) *Resolver {
	return &Resolver{
		reg:      reg,
		manifest: manifest,
		config:   config,
	}
}

// Resolve checks every binding in the manifest and returns the plan.
// Wiring problems surface as diagnostics on the plan, not as the error
// return, so one run reports everything at once.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.manifest == nil {
		return nil, errors.New("bindings manifest is required")
	}

	if r.reg == nil {
		return nil, errors.New("registry is required")
	}

	plan := &Plan{Registry: r.reg}

	if len(r.manifest.Bindings) == 0 {
		plan.Diagnostics.AddWarning(diagnostic.CodeInvalidManifest, "manifest declares no bindings", "", "")
	}

	bound := make(map[analyze.Ident]struct{})

	for i := range r.manifest.Bindings {
		resolved := r.resolveBinding(&r.manifest.Bindings[i], bound, &plan.Diagnostics)
		if resolved != nil {
			plan.Records = append(plan.Records, *resolved)
		}
	}

	if r.config.Strict {
		for _, w := range plan.Diagnostics.Warnings {
			w.Severity = diagnostic.SeverityError
			plan.Diagnostics.Errors = append(plan.Diagnostics.Errors, w)
		}

		plan.Diagnostics.Warnings = nil
	}

	return plan, nil
}

// resolveBinding checks one record binding. It returns nil when the
// binding cannot be generated; field-level problems are reported as
// diagnostics either way.
func (r *Resolver) resolveBinding(b *bindings.RecordBinding, bound map[analyze.Ident]struct{}, diags *diagnostic.Diagnostics) *ResolvedRecord {
	rec := r.resolveRecord(b, diags)
	if rec == nil {
		return nil
	}

	if _, dup := bound[rec.ID]; dup {
		diags.AddError(diagnostic.CodeInvalidManifest,
			fmt.Sprintf("record %s bound more than once", rec.ID), b.Record, "")

		return nil
	}

	bound[rec.ID] = struct{}{}

	if len(rec.Fields) == 0 {
		diags.AddWarning(diagnostic.CodeInvalidManifest,
			fmt.Sprintf("record %s declares no fields", rec.ID), b.Record, "")
	}

	target, err := ParseTarget(r.reg, b.Target)
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidTargetType,
			fmt.Sprintf("target %q: %v", b.Target, err), b.Record, "")
	}

	out := &ResolvedRecord{
		Record:      rec,
		Target:      target,
		Package:     b.Output.Package,
		Constructor: b.Output.Constructor,
	}

	if out.Constructor == "" {
		out.Constructor = "New" + rec.ID.Name + "Evaluator"
	}

	// Covered fields, with a description of what covered them for
	// duplicate reports.
	seen := make(map[string]string)

	for i := range b.Handlers {
		r.resolveHandler(b, &b.Handlers[i], rec, target, seen, out, diags)
	}

	for _, ig := range b.Ignore {
		if name, ok := r.admitField(b, rec, ig, seen, diags); ok {
			seen[name] = "ignore"
			out.Ignored = append(out.Ignored, name)
		}
	}

	// Completeness: every declared field must be covered, and all
	// missing names are reported in one diagnostic.
	var missing []string

	for _, f := range rec.Fields {
		if _, ok := seen[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		diags.AddError(diagnostic.CodeMissingHandlers,
			"missing field handlers: "+strings.Join(missing, ", "), b.Record, "")
	}

	if target == nil {
		return nil
	}

	sort.Slice(out.Handlers, func(i, j int) bool {
		return out.Handlers[i].Field.Name < out.Handlers[j].Field.Name
	})
	sort.Strings(out.Ignored)
	out.Imports = collectImports(rec, target, out.Handlers)

	return out
}

func (r *Resolver) resolveRecord(b *bindings.RecordBinding, diags *diagnostic.Diagnostics) *analyze.RecordInfo {
	rec, err := r.reg.Resolve(b.Record)

	switch {
	case err == nil:
		return rec

	case errors.Is(err, analyze.ErrNotRecord):
		diags.AddError(diagnostic.CodeNotARecordType, err.Error(), b.Record, "")

	case errors.Is(err, analyze.ErrAmbiguous):
		diags.AddError(diagnostic.CodeUnknownRecordType, err.Error(), b.Record, "")

	default:
		suggestions := match.Suggest(b.RecordName(), r.bareRecordNames(), r.config.MaxSuggestions)
		diags.AddErrorWithSuggestions(diagnostic.CodeUnknownRecordType, err.Error(), b.Record, "", suggestions)
	}

	return nil
}

// admitField runs the shared selector checks: syntax, membership, and
// duplicate coverage. Mirrors the runtime lookup order.
func (r *Resolver) admitField(b *bindings.RecordBinding, rec *analyze.RecordInfo, selector string, seen map[string]string, diags *diagnostic.Diagnostics) (string, bool) {
	name, err := bindings.ParseSelector(selector)
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidFieldSelector, err.Error(), b.Record, selector)
		return "", false
	}

	if _, ok := rec.Field(name); !ok {
		if rec.HasUnexported(name) {
			diags.AddError(diagnostic.CodeInvalidFieldSelector,
				fmt.Sprintf("field %q is not exported", name), b.Record, name)

			return "", false
		}

		suggestions := match.Suggest(name, rec.Names(), r.config.MaxSuggestions)
		diags.AddErrorWithSuggestions(diagnostic.CodeInvalidFieldSelector,
			fmt.Sprintf("field %q not found in %s", name, rec.ID), b.Record, name, suggestions)

		return "", false
	}

	if covered, dup := seen[name]; dup {
		diags.AddError(diagnostic.CodeDuplicateHandler,
			fmt.Sprintf("field %q already covered by %s", name, covered), b.Record, name)

		return "", false
	}

	return name, true
}

func (r *Resolver) resolveHandler(b *bindings.RecordBinding, h *bindings.HandlerSpec, rec *analyze.RecordInfo, target types.Type, seen map[string]string, out *ResolvedRecord, diags *diagnostic.Diagnostics) {
	name, ok := r.admitField(b, rec, h.Field, seen, diags)
	if !ok {
		return
	}

	f, _ := rec.Field(name)

	if h.Optional {
		if !f.Optional {
			diags.AddError(diagnostic.CodeFieldNotOptional,
				fmt.Sprintf("field %q is %s, not optional", name, f.Type), b.Record, name)

			return
		}

		if target != nil && !nilable(target) {
			diags.AddError(diagnostic.CodeTargetNotOptional,
				fmt.Sprintf("target %s cannot express an absent result", target), b.Record, name)

			return
		}
	}

	fn := r.resolveFunc(b, rec, h, name, diags)
	if fn == nil {
		return
	}

	if target != nil && !r.checkSignature(b, h, f, fn, target, diags) {
		return
	}

	seen[name] = fmt.Sprintf("handler %s", fn.ID)
	out.Handlers = append(out.Handlers, ResolvedHandler{Field: f, Func: fn, Optional: h.Optional})
}

func (r *Resolver) resolveFunc(b *bindings.RecordBinding, rec *analyze.RecordInfo, h *bindings.HandlerSpec, field string, diags *diagnostic.Diagnostics) *analyze.FuncInfo {
	fn, err := r.reg.ResolveFunc(h.Func, rec.ID.PkgPath)
	if err == nil {
		return fn
	}

	if errors.Is(err, analyze.ErrNotFound) && !strings.Contains(h.Func, ".") {
		suggestions := match.Suggest(h.Func, r.reg.FuncNames(rec.ID.PkgPath), r.config.MaxSuggestions)
		diags.AddErrorWithSuggestions(diagnostic.CodeInvalidHandlerFunc, err.Error(), b.Record, field, suggestions)

		return nil
	}

	diags.AddError(diagnostic.CodeInvalidHandlerFunc, err.Error(), b.Record, field)

	return nil
}

// checkSignature mirrors the runtime handler shape rule:
// func(fieldValue) target, with optional handlers taking the element value.
func (r *Resolver) checkSignature(b *bindings.RecordBinding, h *bindings.HandlerSpec, f analyze.FieldInfo, fn *analyze.FuncInfo, target types.Type, diags *diagnostic.Diagnostics) bool {
	sig := fn.Signature

	if sig.Variadic() || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		diags.AddError(diagnostic.CodeInvalidHandlerFunc,
			fmt.Sprintf("handler %s must be func(fieldValue) target", fn.ID), b.Record, f.Name)

		return false
	}

	in := f.Type
	if h.Optional {
		in = f.Elem
	}

	if param := sig.Params().At(0).Type(); !types.AssignableTo(in, param) {
		diags.AddError(diagnostic.CodeInvalidHandlerFunc,
			fmt.Sprintf("handler %s takes %s, field value is %s", fn.ID, param, in), b.Record, f.Name)

		return false
	}

	if res := sig.Results().At(0).Type(); !resultCompatible(res, target) {
		diags.AddError(diagnostic.CodeInvalidHandlerFunc,
			fmt.Sprintf("handler %s returns %s, want %s", fn.ID, res, target), b.Record, f.Name)

		return false
	}

	return true
}

// resultCompatible reports whether a handler result of type res can be
// taken as the target: identical, or implementing an interface target.
func resultCompatible(res, target types.Type) bool {
	if types.Identical(res, target) {
		return true
	}

	iface, ok := target.Underlying().(*types.Interface)
	if !ok {
		return false
	}

	return types.Implements(res, iface)
}

func (r *Resolver) bareRecordNames() []string {
	var out []string
	for _, rec := range r.reg.Records() {
		out = append(out, rec.ID.Name)
	}

	return out
}

func collectImports(rec *analyze.RecordInfo, target types.Type, handlers []ResolvedHandler) []string {
	paths := map[string]struct{}{rec.ID.PkgPath: {}}

	for _, p := range analyze.TypeImports(target) {
		paths[p] = struct{}{}
	}

	for _, h := range handlers {
		paths[h.Func.ID.PkgPath] = struct{}{}
	}

	out := make([]string, 0, len(paths))
	for p := range paths {
		out = append(out, p)
	}

	sort.Strings(out)
	return out
}
