package generate_test

import (
	"go/parser"
	"go/token"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	detect "github.com/verifake/verifake/vfgen/run/3_detect"
)

const testModulePath = "example.com/mod"

// reporter is the slice of testing.TB that interfaceIn needs, so property
// tests can pass a *rapid.T where unit tests pass a *testing.T.
type reporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// interfaceIn parses source and builds the resolved view of one interface
// declared in it, placed in its own package. Tests adjust the Target fields
// to exercise cross-package placement.
func interfaceIn(t reporter, name, source string) detect.ResolvedInterface {
	t.Helper()

	dec := decorator.NewDecorator(token.NewFileSet())

	file, err := dec.ParseFile("source.go", source, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	pkgPath := testModulePath + "/" + file.Name.Name

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*dst.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*dst.TypeSpec)
			if !ok || typeSpec.Name.Name != name {
				continue
			}

			iface, ok := typeSpec.Type.(*dst.InterfaceType)
			if !ok {
				t.Fatalf("%s is not an interface", name)
			}

			return detect.ResolvedInterface{
				QualifiedName: pkgPath + "." + name,
				SimpleName:    name,
				PkgPath:       pkgPath,
				PkgName:       file.Name.Name,
				Iface:         iface,
				SourceImports: file.Imports,
				TargetDir:     ".",
				TargetPkgPath: pkgPath,
				TargetPkgName: file.Name.Name,
			}
		}
	}

	t.Fatalf("interface %s not found", name)

	return detect.ResolvedInterface{}
}
