package generate

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	detect "github.com/verifake/verifake/vfgen/run/3_detect"
)

// FakeFile renders the source unit holding the verifiable fake for one
// resolved interface. The file lands in the annotating package, so types are
// qualified against the interface's declaring package when the two differ.
func FakeFile(iface detect.ResolvedInterface, ops []detect.Operation) ([]byte, error) {
	gen := newFakeGenerator(iface, ops)
	gen.generate(NewTemplateRegistry())

	formatted, err := format.Source(gen.bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting generated code for %s: %w", iface.QualifiedName, err)
	}

	return formatted, nil
}

type fakeGenerator struct {
	codeWriter
	typeFormatter

	iface       detect.ResolvedInterface
	ops         []detect.Operation
	imports     *importSet
	runtimeQual string
	ifaceType   string
	fakeName    string
	constructor string
}

// newFakeGenerator resolves the import set and qualifiers the rendered file
// needs. Carried source imports claim their aliases first: their qualifiers
// are fixed by the signature text, while the interface package's alias can
// shift to a numbered variant on collision.
func newFakeGenerator(iface detect.ResolvedInterface, ops []detect.Operation) *fakeGenerator {
	gen := &fakeGenerator{
		iface:       iface,
		ops:         ops,
		imports:     newImportSet(),
		runtimeQual: pkgVerifake + ".",
		ifaceType:   iface.SimpleName,
		fakeName:    FakeTypeName(iface.SimpleName),
		constructor: ConstructorName(iface.SimpleName),
	}

	collectSignatureImports(ops, iface.SourceImports, gen.imports)

	if iface.PkgPath != iface.TargetPkgPath {
		alias := gen.imports.add(iface.PkgPath, iface.PkgName)
		gen.ifaceType = alias + "." + iface.SimpleName
		gen.qualifier = alias
	}

	if iface.TargetPkgPath == RuntimePath {
		gen.runtimeQual = ""
	} else {
		gen.imports.addFramework(RuntimePath, pkgVerifake)
	}

	if needsFmt(ops) {
		gen.imports.addFramework("fmt", pkgFmt)
	}

	return gen
}

// generate assembles the file: header, imports, shell, then one method per
// operation in declaration order.
func (gen *fakeGenerator) generate(templates *TemplateRegistry) {
	fmt.Fprintf(&gen.buf, "// Code generated by vfgen. DO NOT EDIT.\n\npackage %s\n\n", gen.iface.TargetPkgName)

	if !gen.imports.empty() {
		gen.buf.WriteString(gen.imports.render())
		gen.buf.WriteString("\n")
	}

	templates.WriteFakeShell(&gen.buf, gen.shellData())

	for _, op := range gen.ops {
		if op.HasResults() {
			templates.WriteFakeStub(&gen.buf, gen.stubData(op))

			continue
		}

		templates.WriteFakeMethod(&gen.buf, gen.methodData(op))
	}
}

type fakeShellData struct {
	FakeName    string
	Constructor string
	IfaceType   string
	RuntimeQual string
}

func (gen *fakeGenerator) shellData() fakeShellData {
	return fakeShellData{
		FakeName:    gen.fakeName,
		Constructor: gen.constructor,
		IfaceType:   gen.ifaceType,
		RuntimeQual: gen.runtimeQual,
	}
}

type fakeMethodData struct {
	FakeName         string
	IfaceType        string
	Name             string
	Params           string
	QualifiedQuoted  string
	RuntimeQual      string
	PkgFmt           string
	ArgsLiteral      string
	NamesLiteral     string
	Count            int
	ExpansionLiteral string
	ResetLiteral     string
	HasParams        bool
	NeedsExpansion   bool
}

func (gen *fakeGenerator) methodData(op detect.Operation) fakeMethodData {
	count := len(op.Params)

	names := make([]string, count)
	quoted := make([]string, count)

	for i, param := range op.Params {
		names[i] = param.Name
		quoted[i] = strconv.Quote(param.Name)
	}

	matcherSlice := "[]" + gen.runtimeQual + "Matcher"

	return fakeMethodData{
		FakeName:         gen.fakeName,
		IfaceType:        gen.ifaceType,
		Name:             op.Name,
		Params:           paramList(op, gen.typeFormatter),
		QualifiedQuoted:  strconv.Quote(op.Qualified),
		RuntimeQual:      gen.runtimeQual,
		PkgFmt:           pkgFmt,
		ArgsLiteral:      "[]any{" + strings.Join(names, ", ") + "}",
		NamesLiteral:     "[]string{" + strings.Join(quoted, ", ") + "}",
		Count:            count,
		ExpansionLiteral: matcherSlice + "{" + repeatJoin("matchers[0]", count) + "}",
		ResetLiteral:     matcherSlice + "{" + gen.runtimeQual + "MatchEqual}",
		HasParams:        count > 0,
		NeedsExpansion:   count > 1,
	}
}

type fakeStubData struct {
	FakeName  string
	IfaceType string
	Name      string
	Params    string
	Results   string
}

func (gen *fakeGenerator) stubData(op detect.Operation) fakeStubData {
	return fakeStubData{
		FakeName:  gen.fakeName,
		IfaceType: gen.ifaceType,
		Name:      op.Name,
		Params:    paramList(op, gen.typeFormatter),
		Results:   resultList(op, gen.typeFormatter),
	}
}

// needsFmt reports whether any generated method formats a failure message.
func needsFmt(ops []detect.Operation) bool {
	for _, op := range ops {
		if !op.HasResults() {
			return true
		}
	}

	return false
}
