package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"slices"
	"sort"
	"strings"
	"text/template"

	"fieldbind/internal/analyze"
	"fieldbind/internal/common"
	"fieldbind/internal/plan"
)

// bindPkgPath is the import path of the runtime accumulator package
// every generated file wires through.
const bindPkgPath = "fieldbind/bind"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables generation of explanatory comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "evaluators",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator renders a resolved binding plan as Go source files.
type Generator struct {
	config GeneratorConfig
	reg    *analyze.Registry
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "movies_filter_evaluator.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per resolved record binding. Plans still
// carrying error diagnostics are refused outright: an incomplete
// binding set must fail the build, not produce partial wiring.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if p == nil {
		return nil, errors.New("nil plan")
	}

	if err := p.Diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("plan has unresolved errors: %w", err)
	}

	g.reg = p.Registry

	// Same-named records from different packages would collide in the
	// output package, so catch that before emitting anything. The same
	// goes for bindings that disagree on the output package itself.
	constructors := make(map[string]analyze.Ident)
	outPkg := ""

	var files []GeneratedFile

	for i := range p.Records {
		rec := &p.Records[i]

		if prev, dup := constructors[rec.Constructor]; dup {
			return nil, fmt.Errorf("constructor %s generated for both %s and %s",
				rec.Constructor, prev, rec.Record.ID)
		}

		constructors[rec.Constructor] = rec.Record.ID

		pkg := g.outputPackage(rec)
		if outPkg == "" {
			outPkg = pkg
		} else if pkg != outPkg {
			return nil, fmt.Errorf("bindings disagree on the output package: %s and %s", outPkg, pkg)
		}

		file, err := g.generateRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("generating evaluator for %s: %w", rec.Record.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// outputPackage returns the package name for a record's generated file:
// the manifest override when present, the configured default otherwise.
func (g *Generator) outputPackage(rec *plan.ResolvedRecord) string {
	if rec.Package != "" {
		return rec.Package
	}

	return g.config.PackageName
}

// evaluatorTemplate renders the wiring for one record: a constant per
// covered field, a constructor sealing the accumulator under Must, and
// a blank var that runs the constructor at package load so a record
// changed after generation fails immediately.
var evaluatorTemplate = template.Must(template.New("evaluator").Parse(`// Code generated by fieldbind. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

{{if .Selectors}}{{if .GenerateComments}}// Field selectors for {{.RecordType}}.
{{end}}const (
{{range .Selectors}}	{{.Name}} = "{{.Value}}"
{{end}})

{{end}}{{if .GenerateComments}}// {{.Constructor}} wires one handler per field of {{.RecordType}} and
// re-asserts completeness when this package initializes.
{{end}}func {{.Constructor}}() {{.BindPkg}}.Evaluator[{{.RecordType}}, {{.TargetType}}] {
	return {{.BindPkg}}.Must({{.Chain}})
}

var _ = {{.Constructor}}()
`))

// templateData holds all data needed for the evaluator template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	BindPkg          string
	RecordType       string
	TargetType       string
	Constructor      string
	Selectors        []selectorConst
	Chain            string
	GenerateComments bool
}

// selectorConst is one exported field-name constant.
type selectorConst struct {
	Name  string
	Value string
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// generateRecord generates the evaluator file for a single record.
func (g *Generator) generateRecord(rec *plan.ResolvedRecord) (*GeneratedFile, error) {
	data := g.buildTemplateData(rec)

	var buf bytes.Buffer
	if err := evaluatorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		// This is intentionally non-fatal for the write attempt.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data from a resolved record.
func (g *Generator) buildTemplateData(rec *plan.ResolvedRecord) *templateData {
	imports, aliases := g.buildImports(rec)
	qual := analyze.Qualifier(aliases)

	recordType := types.TypeString(rec.Record.Type, qual)
	targetType := types.TypeString(rec.Target, qual)

	return &templateData{
		PackageName:      g.outputPackage(rec),
		Filename:         g.filename(rec),
		Imports:          imports,
		BindPkg:          aliases[bindPkgPath],
		RecordType:       recordType,
		TargetType:       targetType,
		Constructor:      rec.Constructor,
		Selectors:        g.selectors(rec),
		Chain:            g.chainExpr(rec, recordType, targetType, aliases),
		GenerateComments: g.config.GenerateComments,
	}
}

// buildImports resolves the import list for a generated file and the
// alias table used to qualify type references. Colliding package names
// get a numeric suffix; an explicit alias is emitted only when the
// local name differs from the path base.
func (g *Generator) buildImports(rec *plan.ResolvedRecord) ([]importSpec, map[string]string) {
	paths := make([]string, 0, len(rec.Imports)+1)
	paths = append(paths, rec.Imports...)

	if !slices.Contains(paths, bindPkgPath) {
		paths = append(paths, bindPkgPath)
	}

	sort.Strings(paths)

	aliases := make(map[string]string, len(paths))
	used := make(map[string]struct{}, len(paths))
	imports := make([]importSpec, 0, len(paths))

	for _, path := range paths {
		name := g.pkgName(path)

		alias := name
		for n := 2; ; n++ {
			if _, taken := used[alias]; !taken {
				break
			}

			alias = fmt.Sprintf("%s%d", name, n)
		}

		used[alias] = struct{}{}
		aliases[path] = alias

		spec := importSpec{Path: path}
		if alias != common.PkgAlias(path) {
			spec.Alias = alias
		}

		imports = append(imports, spec)
	}

	return imports, aliases
}

// selectors lists one constant per covered field, sorted by field name.
// Both bound and ignored fields get a constant; together they spell the
// record's full registry.
func (g *Generator) selectors(rec *plan.ResolvedRecord) []selectorConst {
	names := make([]string, 0, len(rec.Handlers)+len(rec.Ignored))
	for i := range rec.Handlers {
		names = append(names, rec.Handlers[i].Field.Name)
	}

	names = append(names, rec.Ignored...)
	sort.Strings(names)

	out := make([]selectorConst, 0, len(names))
	for _, name := range names {
		out = append(out, selectorConst{
			Name:  g.constName(rec, name),
			Value: name,
		})
	}

	return out
}

// chainExpr renders the accumulator chain sealed by Finalize: handlers
// first in evaluation order, then the deliberate ignores.
func (g *Generator) chainExpr(rec *plan.ResolvedRecord, recordType, targetType string, aliases map[string]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s.Build[%s, %s]()", aliases[bindPkgPath], recordType, targetType)

	for i := range rec.Handlers {
		h := &rec.Handlers[i]

		method := "Bind"
		if h.Optional {
			method = "BindOptional"
		}

		fmt.Fprintf(&sb, ".\n\t\t%s(%s, %s.%s)",
			method, g.constName(rec, h.Field.Name), aliases[h.Func.ID.PkgPath], h.Func.ID.Name)
	}

	for _, name := range rec.Ignored {
		fmt.Fprintf(&sb, ".\n\t\tIgnore(%s)", g.constName(rec, name))
	}

	sb.WriteString(".\n\t\tFinalize()")

	return sb.String()
}

// constName returns the constant name for a field selector,
// e.g. "FilterDirectorEq" for field DirectorEq of movies.Filter.
func (g *Generator) constName(rec *plan.ResolvedRecord, field string) string {
	return rec.Record.ID.Name + field
}

// filename derives the output file name from the record's package and
// name (e.g., "movies_filter_evaluator.go").
func (g *Generator) filename(rec *plan.ResolvedRecord) string {
	pkg := g.pkgName(rec.Record.ID.PkgPath)
	name := strings.ToLower(rec.Record.ID.Name)

	return fmt.Sprintf("%s_%s_evaluator.go", pkg, name)
}

// pkgName returns the declared name of the package at path, falling
// back to the path base when the package was not loaded.
func (g *Generator) pkgName(path string) string {
	if g.reg != nil {
		if p := g.reg.Package(path); p != nil {
			return p.Name
		}
	}

	return common.PkgAlias(path)
}
