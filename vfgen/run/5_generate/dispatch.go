package generate

import (
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// Entry is one dispatch table row: a qualified interface name mapped to the
// generated constructor that fakes it.
type Entry struct {
	Key         string // qualified interface name
	PkgPath     string // package holding the generated fake
	PkgName     string // preferred qualifier for that package
	Constructor string
}

// DispatchFile renders the source unit mapping runtime type identities to
// fake constructors, for the shared package named pkgName at pkgPath.
func DispatchFile(entries []Entry, pkgName, pkgPath string) ([]byte, error) {
	gen := &dispatchGenerator{pkgName: pkgName, pkgPath: pkgPath, imports: newImportSet()}
	gen.generate(NewTemplateRegistry(), entries)

	formatted, err := format.Source(gen.bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting generated dispatch table: %w", err)
	}

	return formatted, nil
}

type dispatchGenerator struct {
	codeWriter

	pkgName string
	pkgPath string
	imports *importSet
}

// generate assembles the file. Rows sort by qualified name so the output
// never depends on discovery order, and a fake living in the table's own
// package keeps its constructor unqualified.
func (gen *dispatchGenerator) generate(templates *TemplateRegistry, entries []Entry) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var arms strings.Builder

	for _, entry := range sorted {
		constructor := entry.Constructor
		if entry.PkgPath != gen.pkgPath {
			alias := gen.imports.add(entry.PkgPath, entry.PkgName)
			constructor = alias + "." + constructor
		}

		fmt.Fprintf(&arms, "\tcase %q:\n\t\treturn %s()\n", entry.Key, constructor)
	}

	gen.imports.addFramework("fmt", pkgFmt)
	gen.imports.addFramework("reflect", pkgReflect)

	fmt.Fprintf(&gen.buf, "// Code generated by vfgen. DO NOT EDIT.\n\npackage %s\n\n", gen.pkgName)
	gen.buf.WriteString(gen.imports.render())
	gen.buf.WriteString("\n")

	templates.WriteDispatchFuncs(&gen.buf, dispatchFuncsData{
		Arms:       arms.String(),
		PkgFmt:     pkgFmt,
		PkgReflect: pkgReflect,
	})
}

type dispatchFuncsData struct {
	Arms       string
	PkgFmt     string
	PkgReflect string
}
