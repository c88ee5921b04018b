package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds all parsed text templates for code generation.
// Create a registry using NewTemplateRegistry to initialize all templates.
type TemplateRegistry struct {
	// Fake templates
	fakeShellTmpl  *template.Template
	fakeMethodTmpl *template.Template
	fakeStubTmpl   *template.Template
	// Dispatch table templates
	dispatchFuncsTmpl *template.Template
}

// NewTemplateRegistry creates and initializes a new template registry with
// all templates parsed. Templates are hardcoded constants, so parsing cannot
// fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{}

	registry.parseFakeTemplates()
	registry.parseDispatchTemplates()

	return registry
}

// WriteFakeShell writes the fake struct, its constructor, and the
// conformance check.
func (r *TemplateRegistry) WriteFakeShell(buf *bytes.Buffer, data any) {
	err := r.fakeShellTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute fakeShell template: %v", err))
	}
}

// WriteFakeMethod writes one record-or-verify method.
func (r *TemplateRegistry) WriteFakeMethod(buf *bytes.Buffer, data any) {
	err := r.fakeMethodTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute fakeMethod template: %v", err))
	}
}

// WriteFakeStub writes one always-panicking method for an operation whose
// results cannot be synthesized.
func (r *TemplateRegistry) WriteFakeStub(buf *bytes.Buffer, data any) {
	err := r.fakeStubTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute fakeStub template: %v", err))
	}
}

// WriteDispatchFuncs writes the name-keyed and type-keyed constructors of
// the dispatch table.
func (r *TemplateRegistry) WriteDispatchFuncs(buf *bytes.Buffer, data any) {
	err := r.dispatchFuncsTmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute dispatchFuncs template: %v", err))
	}
}

// parseFakeTemplates parses the templates for generated fake files.
func (r *TemplateRegistry) parseFakeTemplates() {
	r.fakeShellTmpl = template.Must(template.New("fakeShell").Parse(fakeShellText))
	r.fakeMethodTmpl = template.Must(template.New("fakeMethod").Parse(fakeMethodText))
	r.fakeStubTmpl = template.Must(template.New("fakeStub").Parse(fakeStubText))
}

// parseDispatchTemplates parses the templates for the dispatch table file.
func (r *TemplateRegistry) parseDispatchTemplates() {
	r.dispatchFuncsTmpl = template.Must(template.New("dispatchFuncs").Parse(dispatchFuncsText))
}

// fakeShellText declares the fake type, its constructor, and the compile-time
// check that the fake still satisfies the interface it was generated from.
const fakeShellText = `// {{.FakeName}} is a verifiable fake of {{.IfaceType}}: calls are recorded
// until verifying mode turns on, then checked against the log in order.
type {{.FakeName}} struct {
	{{.RuntimeQual}}Core
}

// {{.Constructor}} returns a fake ready to record invocations.
func {{.Constructor}}() *{{.FakeName}} {
	return &{{.FakeName}}{Core: {{.RuntimeQual}}NewCore()}
}

var _ {{.IfaceType}} = (*{{.FakeName}})(nil)
`

// fakeMethodText is the record-or-verify body shared by every operation with
// no results. Composite literals arrive pre-rendered so the template never
// nests braces.
const fakeMethodText = `
// {{.Name}} implements {{.IfaceType}}.{{.Name}} by recording the call, or by
// verifying it against the recorded log once verifying mode turns on.
func (f *{{.FakeName}}) {{.Name}}({{.Params}}) {
	if !f.Verifying {
		f.Invocations = append(f.Invocations, {{.RuntimeQual}}Invocation{Op: {{.QualifiedQuoted}}, Args: {{.ArgsLiteral}}})

		return
	}

	if len(f.Invocations) == 0 {
		panic("Expected an invocation, but got none instead")
	}

	recorded := f.Invocations[0]
	f.Invocations = f.Invocations[1:]

	if recorded.Op != {{.QualifiedQuoted}} {
		panic({{.PkgFmt}}.Sprintf("Expected an invocation of %s, but got %s instead", {{.QualifiedQuoted}}, recorded.Op))
	}
{{if .HasParams}}
	matchers := f.ParamMatchers
{{if .NeedsExpansion}}
	if len(matchers) == 1 {
		matchers = {{.ExpansionLiteral}}
	}
{{end}}
	if len(matchers) != {{.Count}} {
		panic({{.PkgFmt}}.Sprintf("Expected {{.Count}} parameter matchers, but got %d instead", len(matchers)))
	}

	args := {{.ArgsLiteral}}

	for i, name := range {{.NamesLiteral}} {
		if !matchers[i](args[i], recorded.Args[i]) {
			panic({{.PkgFmt}}.Sprintf("Expected argument %s to match %v, but got %v instead", name, args[i], recorded.Args[i]))
		}
	}

	f.ParamMatchers = {{.ResetLiteral}}
{{end}}}
`

// fakeStubText is the body for operations with results.
const fakeStubText = `
// {{.Name}} implements {{.IfaceType}}.{{.Name}} and always panics: the fake
// cannot synthesize its results.
func (f *{{.FakeName}}) {{.Name}}({{.Params}}){{.Results}} {
	panic("Only functions with return type Unit can be verified")
}
`

// dispatchFuncsText maps qualified interface names, and through reflection
// interface types, to generated fake constructors.
const dispatchFuncsText = `// NewFake returns a fresh fake for the interface with the given qualified
// name.
func NewFake(name string) any {
	switch name {
{{.Arms}}	default:
		panic({{.PkgFmt}}.Sprintf("Unsupported type %s", name))
	}
}

// Fake returns a fresh fake implementing the interface type T, looked up by
// its runtime type identity.
func Fake[T any]() T {
	ifaceType := {{.PkgReflect}}.TypeOf((*T)(nil)).Elem()

	name := ifaceType.Name()
	if ifaceType.PkgPath() != "" {
		name = ifaceType.PkgPath() + "." + name
	}

	return NewFake(name).(T)
}
`
