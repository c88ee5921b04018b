package detect_test

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"log/slog"
	"path/filepath"
	"slices"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	load "github.com/verifake/verifake/vfgen/run/2_load"
	detect "github.com/verifake/verifake/vfgen/run/3_detect"
)

// parseFile parses one source file with comments attached.
func parseFile(t *testing.T, path, source string) load.SourceFile {
	t.Helper()

	dec := decorator.NewDecorator(token.NewFileSet())

	file, err := dec.ParseFile(path, source, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}

	return load.SourceFile{Path: path, File: file}
}

// packageOf builds an in-memory package from file-name-to-source mappings.
func packageOf(t *testing.T, dir, importPath string, sources map[string]string) *detect.Package {
	t.Helper()

	pkg := &detect.Package{Dir: dir, ImportPath: importPath}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		pkg.Files = append(pkg.Files, parseFile(t, filepath.Join(dir, name), sources[name]))
	}

	return pkg
}

// interfaceIn pulls a named interface declaration out of parsed source for
// introspection tests.
func interfaceIn(t *testing.T, name, source string) detect.ResolvedInterface {
	t.Helper()

	file := parseFile(t, "iface.go", source)

	for _, decl := range file.File.Decls {
		genDecl, ok := decl.(*dst.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*dst.TypeSpec)
			if !ok || typeSpec.Name.Name != name {
				continue
			}

			return detect.ResolvedInterface{
				QualifiedName: "example.com/mod/pkg." + name,
				SimpleName:    name,
				PkgPath:       "example.com/mod/pkg",
				PkgName:       file.File.Name.Name,
				Iface:         typeSpec.Type.(*dst.InterfaceType),
				SourceImports: file.File.Imports,
			}
		}
	}

	t.Fatalf("no interface %s in source", name)

	return detect.ResolvedInterface{}
}

// stubLoader serves pre-parsed packages by directory.
type stubLoader struct {
	packages map[string][]load.SourceFile
}

func (l *stubLoader) Load(dir string, _ bool) ([]load.SourceFile, error) {
	files, ok := l.packages[dir]
	if !ok {
		return nil, fmt.Errorf("no package at %s", dir)
	}

	return files, nil
}

// captureLogger returns a logger whose output the test can inspect.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
