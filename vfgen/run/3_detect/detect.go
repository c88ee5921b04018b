// Package detect finds directive-marked declarations in scanned packages and
// resolves them to the interfaces eligible for fake generation.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"strings"

	"github.com/dave/dst"

	astutil "github.com/verifake/verifake/vfgen/run/0_util"
	load "github.com/verifake/verifake/vfgen/run/2_load"
)

// Directive marks a var declaration for fake generation. It applies to every
// spec of a grouped declaration when written above the var keyword, or to a
// single spec when written directly above it.
const Directive = "//vfgen:verify"

// Diagnostic messages for rejected annotations.
const (
	MsgOnlyProperties = "Only properties can be annotated with Verify"
	MsgOnlyInterfaces = "Only interfaces can be verified"
	MsgOnlyNonGeneric = "Only non-generic interfaces can be verified"
)

// Interfaces - Public

// PackageLoader loads the parsed files of one package directory.
type PackageLoader interface {
	Load(dir string, local bool) ([]load.SourceFile, error)
}

// Structs - Public

// Package is one scanned directory's parsed content.
type Package struct {
	Dir        string
	ImportPath string
	Files      []load.SourceFile
}

// Annotated is one directive-marked declaration, before eligibility checks.
type Annotated struct {
	Pkg  *Package
	File load.SourceFile
	Name string         // declared name, for diagnostics
	Kind string         // "var", "const", "type", "func", or "import"
	Spec *dst.ValueSpec // non-nil only for var specs
}

// ResolvedInterface is one deduplicated eligible interface together with the
// placement of its generated fake.
type ResolvedInterface struct {
	QualifiedName string            // "<import path>.<simple name>": dispatch key and identity prefix
	SimpleName    string
	PkgPath       string            // declaring package import path
	PkgName       string            // declaring package name
	Iface         *dst.InterfaceType
	SourceImports []*dst.ImportSpec // imports of the file declaring the interface

	TargetDir     string // annotation's directory: where the fake file goes
	TargetPkgPath string
	TargetPkgName string // package clause for the generated file
	FromTestFile  bool   // annotation found in a _test.go file
}

// Functions - Public

// CollectAnnotated returns the directive-marked declarations of a package in
// file order, which (with sorted files and sorted scan directories) defines
// the pass's first-occurrence order.
func CollectAnnotated(pkg *Package) []Annotated {
	var annotated []Annotated

	for _, file := range pkg.Files {
		for _, decl := range file.File.Decls {
			annotated = append(annotated, collectFromDecl(pkg, file, decl)...)
		}
	}

	return annotated
}

// Filter applies the eligibility checks to every annotated declaration and
// returns the surviving interfaces, deduplicated by qualified name with the
// first occurrence winning. Rejections are reported to logger and never fail
// the pass; a type that resolves to no declaration at all does fail it.
func Filter(
	annotated []Annotated, resolver *Resolver, loader PackageLoader, logger *slog.Logger,
) ([]ResolvedInterface, error) {
	var (
		ordered []ResolvedInterface
		seen    = map[string]struct{}{}
	)

	for _, ann := range annotated {
		resolved, eligible, err := checkOne(ann, resolver, loader, logger)
		if err != nil {
			return nil, err
		}

		if !eligible {
			continue
		}

		if _, dup := seen[resolved.QualifiedName]; dup {
			continue
		}

		seen[resolved.QualifiedName] = struct{}{}

		ordered = append(ordered, resolved)
	}

	return ordered, nil
}

// LocalImportName returns the identifier a file references an import by:
// its alias when present, the last path segment otherwise.
func LocalImportName(spec *dst.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.Name
	}

	path := ImportPath(spec)
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}

	return path
}

// ImportPath returns the unquoted import path of an import spec.
func ImportPath(spec *dst.ImportSpec) string {
	return strings.Trim(spec.Path.Value, `"`)
}

// QualifierImportPath maps a package qualifier to the import path it refers
// to in the given import list, or "" when no import matches.
func QualifierImportPath(imports []*dst.ImportSpec, qualifier string) string {
	for _, spec := range imports {
		name := LocalImportName(spec)
		if name == "." || name == "_" {
			continue
		}

		if name == qualifier {
			return ImportPath(spec)
		}
	}

	return ""
}

// Functions - Private

// collectFromDecl extracts annotations from one top-level declaration.
func collectFromDecl(pkg *Package, file load.SourceFile, decl dst.Decl) []Annotated {
	switch typed := decl.(type) {
	case *dst.GenDecl:
		return collectFromGenDecl(pkg, file, typed)
	case *dst.FuncDecl:
		if hasDirective(typed.Decorations()) {
			return []Annotated{{Pkg: pkg, File: file, Name: typed.Name.Name, Kind: "func"}}
		}
	}

	return nil
}

// collectFromGenDecl extracts annotations from a var/const/type/import
// declaration, honoring both group-level and per-spec directives.
func collectFromGenDecl(pkg *Package, file load.SourceFile, decl *dst.GenDecl) []Annotated {
	groupMarked := hasDirective(decl.Decorations())

	var annotated []Annotated

	for _, spec := range decl.Specs {
		if !groupMarked && !hasDirective(spec.Decorations()) {
			continue
		}

		switch typed := spec.(type) {
		case *dst.ValueSpec:
			ann := Annotated{Pkg: pkg, File: file, Name: valueSpecName(typed), Kind: "const"}
			if decl.Tok == token.VAR {
				ann.Kind = "var"
				ann.Spec = typed
			}

			annotated = append(annotated, ann)
		case *dst.TypeSpec:
			annotated = append(annotated, Annotated{Pkg: pkg, File: file, Name: typed.Name.Name, Kind: "type"})
		case *dst.ImportSpec:
			annotated = append(annotated, Annotated{Pkg: pkg, File: file, Name: ImportPath(typed), Kind: "import"})
		}
	}

	return annotated
}

// hasDirective reports whether a declaration's leading comments carry the
// directive.
func hasDirective(decs *dst.NodeDecs) bool {
	for _, line := range decs.Start.All() {
		if strings.TrimSpace(line) == Directive {
			return true
		}
	}

	return false
}

// valueSpecName names a value spec for diagnostics.
func valueSpecName(spec *dst.ValueSpec) string {
	if len(spec.Names) == 0 {
		return ""
	}

	return spec.Names[0].Name
}

// checkOne runs the two eligibility checks for a single annotation.
func checkOne(
	ann Annotated, resolver *Resolver, loader PackageLoader, logger *slog.Logger,
) (ResolvedInterface, bool, error) {
	// Check A: only a var spec with an explicit type is property-like.
	if ann.Kind != "var" || ann.Spec == nil || ann.Spec.Type == nil {
		logger.Warn(MsgOnlyProperties, "file", ann.File.Path, "name", ann.Name)

		return ResolvedInterface{}, false, nil
	}

	// Check B: the declared type must resolve to a non-generic interface.
	resolved, err := resolveTypeExpr(ann.Spec.Type, ann.File, ann.Pkg, resolver, loader, 0)
	if err != nil {
		return ResolvedInterface{}, false, err
	}

	if resolved.iface == nil {
		logger.Warn(MsgOnlyInterfaces, "file", ann.File.Path, "name", ann.Name)

		return ResolvedInterface{}, false, nil
	}

	if resolved.typeParams != nil {
		logger.Warn(MsgOnlyNonGeneric, "file", ann.File.Path, "name", ann.Name)

		return ResolvedInterface{}, false, nil
	}

	return ResolvedInterface{
		QualifiedName: resolved.pkgPath + "." + resolved.name,
		SimpleName:    resolved.name,
		PkgPath:       resolved.pkgPath,
		PkgName:       resolved.pkgName,
		Iface:         resolved.iface,
		SourceImports: resolved.declFile.File.Imports,
		TargetDir:     ann.Pkg.Dir,
		TargetPkgPath: ann.Pkg.ImportPath,
		TargetPkgName: ann.File.File.Name.Name,
		FromTestFile:  load.IsTestFile(ann.File.Path),
	}, true, nil
}

// resolvedType is the declaration a type expression resolved to.
type resolvedType struct {
	name       string
	pkgPath    string
	pkgName    string
	iface      *dst.InterfaceType // nil when the declaration is not an interface
	typeParams *dst.FieldList
	declFile   load.SourceFile
}

// maxAliasDepth bounds alias chains so a cycle cannot hang the pass.
const maxAliasDepth = 10

// resolveTypeExpr resolves a declared type expression to its declaration.
// Idents resolve within the annotation file's package (matching package
// clause, so external test packages resolve separately); selectors resolve
// through the file's imports. Aliases are followed; anything that is not a
// named type resolves to "not an interface".
func resolveTypeExpr(
	expr dst.Expr, file load.SourceFile, pkg *Package,
	resolver *Resolver, loader PackageLoader, depth int,
) (resolvedType, error) {
	if depth > maxAliasDepth {
		return resolvedType{}, fmt.Errorf("%w: alias chain too deep in %s", errUnresolvedType, file.Path)
	}

	switch typed := expr.(type) {
	case *dst.Ident:
		return resolveIdent(typed, file, pkg, resolver, loader, depth)
	case *dst.SelectorExpr:
		return resolveSelector(typed, file, resolver, loader, depth)
	case *dst.IndexExpr:
		// An instantiated generic resolves through its base name so the
		// rejection names the right rule.
		return resolveTypeExpr(typed.X, file, pkg, resolver, loader, depth)
	case *dst.IndexListExpr:
		return resolveTypeExpr(typed.X, file, pkg, resolver, loader, depth)
	default:
		// Pointer, slice, func, and other composite types never refer to an
		// interface declaration directly.
		return resolvedType{}, nil
	}
}

// resolveIdent resolves an unqualified type name within the declaring file's
// package.
func resolveIdent(
	ident *dst.Ident, file load.SourceFile, pkg *Package,
	resolver *Resolver, loader PackageLoader, depth int,
) (resolvedType, error) {
	spec, declFile, found := lookupTypeSpec(ident.Name, samePackageFiles(pkg.Files, file))
	if !found {
		// Predeclared names (error and any included) have no declaration to
		// introspect, so they fail the interface check rather than the pass.
		if astutil.IsBuiltinType(ident.Name) {
			return resolvedType{}, nil
		}

		return resolvedType{}, fmt.Errorf("%w: %s in %s", errUnresolvedType, ident.Name, file.Path)
	}

	return resolveTypeSpec(spec, declFile, pkg, resolver, loader, depth)
}

// resolveSelector resolves a qualified type name through the file's imports.
func resolveSelector(
	sel *dst.SelectorExpr, file load.SourceFile,
	resolver *Resolver, loader PackageLoader, depth int,
) (resolvedType, error) {
	qualifier, ok := sel.X.(*dst.Ident)
	if !ok {
		return resolvedType{}, nil
	}

	importPath := QualifierImportPath(file.File.Imports, qualifier.Name)
	if importPath == "" {
		return resolvedType{}, fmt.Errorf(
			"%w: no import for qualifier %s in %s", errUnresolvedType, qualifier.Name, file.Path)
	}

	dir, err := resolver.DirFor(importPath)
	if err != nil {
		return resolvedType{}, err
	}

	files, err := loader.Load(dir, false)
	if err != nil {
		return resolvedType{}, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	foreign := &Package{Dir: dir, ImportPath: importPath, Files: files}

	spec, declFile, found := lookupTypeSpec(sel.Sel.Name, files)
	if !found {
		return resolvedType{}, fmt.Errorf(
			"%w: %s.%s in %s", errUnresolvedType, qualifier.Name, sel.Sel.Name, file.Path)
	}

	return resolveTypeSpec(spec, declFile, foreign, resolver, loader, depth)
}

// resolveTypeSpec classifies a type declaration, following aliases.
func resolveTypeSpec(
	spec *dst.TypeSpec, declFile load.SourceFile, pkg *Package,
	resolver *Resolver, loader PackageLoader, depth int,
) (resolvedType, error) {
	if spec.Assign {
		return resolveTypeExpr(spec.Type, declFile, pkg, resolver, loader, depth+1)
	}

	resolved := resolvedType{
		name:       spec.Name.Name,
		pkgPath:    pkg.ImportPath,
		pkgName:    load.PackageName(pkg.Files),
		typeParams: spec.TypeParams,
		declFile:   declFile,
	}

	if iface, ok := spec.Type.(*dst.InterfaceType); ok {
		resolved.iface = iface
	}

	return resolved, nil
}

// lookupTypeSpec finds a type declaration by name across a package's files.
func lookupTypeSpec(name string, files []load.SourceFile) (*dst.TypeSpec, load.SourceFile, bool) {
	for _, file := range files {
		for _, decl := range file.File.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if ok && typeSpec.Name.Name == name {
					return typeSpec, file, true
				}
			}
		}
	}

	return nil, load.SourceFile{}, false
}

// samePackageFiles narrows a directory's files to those sharing the given
// file's package clause, separating internal and external test packages.
func samePackageFiles(files []load.SourceFile, file load.SourceFile) []load.SourceFile {
	var same []load.SourceFile

	for _, candidate := range files {
		if candidate.File.Name.Name == file.File.Name.Name {
			same = append(same, candidate)
		}
	}

	return same
}

// unexported variables.
var (
	errUnresolvedType = errors.New("unresolved type")
)
