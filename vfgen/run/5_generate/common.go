package generate

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/dave/dst"

	astutil "github.com/verifake/verifake/vfgen/run/0_util"
	detect "github.com/verifake/verifake/vfgen/run/3_detect"
)

// RuntimePath is the import path of the verification runtime the generated
// code calls into.
const RuntimePath = "github.com/verifake/verifake"

// unexported constants.
const (
	pkgFmt      = "_fmt"
	pkgReflect  = "_reflect"
	pkgVerifake = "_verifake"
)

type codeWriter struct {
	buf bytes.Buffer
}

// bytes returns the buffer contents.
func (w *codeWriter) bytes() []byte {
	return w.buf.Bytes()
}

type typeFormatter struct {
	qualifier string // "" when the fake lives in the interface's own package
}

// typeString renders a type expression the way the generated method must
// spell it: exported names from the interface's package gain the qualifier
// when the fake lives elsewhere, selectors keep the qualifier the declaring
// file used.
func (f typeFormatter) typeString(expr dst.Expr) string {
	if f.qualifier == "" {
		return astutil.TypeString(expr)
	}

	return astutil.QualifiedTypeString(expr, func(name string) string {
		if !isExported(name) {
			return name
		}

		return f.qualifier + "." + name
	})
}

// importSet assigns stable aliases to the imports of one generated file.
// Framework imports keep their fixed underscore aliases even when the same
// path is also imported under a source qualifier, which Go permits.
type importSet struct {
	byPath  map[string]string // carried imports, for dedup by path
	byAlias map[string]string // every alias in the file, mapped to its path
}

func newImportSet() *importSet {
	return &importSet{byPath: map[string]string{}, byAlias: map[string]string{}}
}

// add registers path under the preferred alias, or a numbered variant when
// another import already claimed it, and returns the alias to qualify with.
func (s *importSet) add(path, preferred string) string {
	if alias, ok := s.byPath[path]; ok {
		return alias
	}

	alias := preferred

	for n := 2; ; n++ {
		if _, taken := s.byAlias[alias]; !taken {
			break
		}

		alias = fmt.Sprintf("%s%d", preferred, n)
	}

	s.byPath[path] = alias
	s.byAlias[alias] = path

	return alias
}

// addFramework registers path under a fixed framework alias. The underscore
// prefix keeps framework aliases clear of every source qualifier.
func (s *importSet) addFramework(path, alias string) {
	s.byAlias[alias] = path
}

func (s *importSet) empty() bool {
	return len(s.byAlias) == 0
}

// render produces the import declaration, standard library group first,
// each group sorted by path.
func (s *importSet) render() string {
	aliases := make([]string, 0, len(s.byAlias))
	for alias := range s.byAlias {
		aliases = append(aliases, alias)
	}

	sort.Slice(aliases, func(i, j int) bool {
		left, right := s.byAlias[aliases[i]], s.byAlias[aliases[j]]
		if left != right {
			return left < right
		}

		return aliases[i] < aliases[j]
	})

	var stdlib, external []string

	for _, alias := range aliases {
		path := s.byAlias[alias]

		line := "\t" + importLine(alias, path)
		if isStdlibPath(path) {
			stdlib = append(stdlib, line)
		} else {
			external = append(external, line)
		}
	}

	groups := make([]string, 0, 2)

	if len(stdlib) > 0 {
		groups = append(groups, strings.Join(stdlib, "\n"))
	}

	if len(external) > 0 {
		groups = append(groups, strings.Join(external, "\n"))
	}

	return "import (\n" + strings.Join(groups, "\n\n") + "\n)\n"
}

// collectSignatureImports registers every import the rendered signatures of
// ops reference, keeping the qualifiers the declaring file used.
func collectSignatureImports(ops []detect.Operation, sourceImports []*dst.ImportSpec, imports *importSet) {
	for _, op := range ops {
		if op.HasCtx {
			collectExprImports(op.CtxType, sourceImports, imports)
		}

		for _, param := range op.Params {
			collectExprImports(param.Type, sourceImports, imports)
		}

		if op.Results == nil {
			continue
		}

		for _, field := range op.Results.List {
			collectExprImports(field.Type, sourceImports, imports)
		}
	}
}

// collectExprImports walks one type expression for package selectors.
func collectExprImports(expr dst.Expr, sourceImports []*dst.ImportSpec, imports *importSet) {
	switch typed := expr.(type) {
	case *dst.SelectorExpr:
		qualifier, ok := typed.X.(*dst.Ident)
		if !ok {
			return
		}

		path := detect.QualifierImportPath(sourceImports, qualifier.Name)
		if path != "" {
			imports.add(path, qualifier.Name)
		}
	case *dst.StarExpr:
		collectExprImports(typed.X, sourceImports, imports)
	case *dst.ArrayType:
		collectExprImports(typed.Elt, sourceImports, imports)
	case *dst.MapType:
		collectExprImports(typed.Key, sourceImports, imports)
		collectExprImports(typed.Value, sourceImports, imports)
	case *dst.ChanType:
		collectExprImports(typed.Value, sourceImports, imports)
	case *dst.Ellipsis:
		collectExprImports(typed.Elt, sourceImports, imports)
	case *dst.FuncType:
		collectFieldListImports(typed.Params, sourceImports, imports)
		collectFieldListImports(typed.Results, sourceImports, imports)
	case *dst.ParenExpr:
		collectExprImports(typed.X, sourceImports, imports)
	case *dst.IndexExpr:
		collectExprImports(typed.X, sourceImports, imports)
		collectExprImports(typed.Index, sourceImports, imports)
	case *dst.IndexListExpr:
		collectExprImports(typed.X, sourceImports, imports)

		for _, index := range typed.Indices {
			collectExprImports(index, sourceImports, imports)
		}
	case *dst.InterfaceType:
		collectFieldListImports(typed.Methods, sourceImports, imports)
	case *dst.StructType:
		collectFieldListImports(typed.Fields, sourceImports, imports)
	}
}

func collectFieldListImports(fields *dst.FieldList, sourceImports []*dst.ImportSpec, imports *importSet) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		collectExprImports(field.Type, sourceImports, imports)
	}
}

// paramList renders the parameter declaration of one generated method,
// including a leading context when the source signature carries one.
func paramList(op detect.Operation, formatter typeFormatter) string {
	parts := make([]string, 0, len(op.Params)+1)

	if op.HasCtx {
		parts = append(parts, op.CtxName+" "+formatter.typeString(op.CtxType))
	}

	for _, param := range op.Params {
		parts = append(parts, param.Name+" "+formatter.typeString(param.Type))
	}

	return strings.Join(parts, ", ")
}

// resultList renders the result declaration of one generated method, with a
// leading space so an empty result list renders as nothing.
func resultList(op detect.Operation, formatter typeFormatter) string {
	if !op.HasResults() {
		return ""
	}

	types := expandedTypes(op.Results, formatter)
	if len(types) == 1 {
		return " " + types[0]
	}

	return " (" + strings.Join(types, ", ") + ")"
}

// expandedTypes renders a field list one entry per declared name, so grouped
// results ("a, b int") keep their arity.
func expandedTypes(fields *dst.FieldList, formatter typeFormatter) []string {
	if fields == nil {
		return nil
	}

	var types []string

	for _, field := range fields.List {
		rendered := formatter.typeString(field.Type)

		count := len(field.Names)
		if count == 0 {
			count = 1
		}

		for i := 0; i < count; i++ {
			types = append(types, rendered)
		}
	}

	return types
}

// repeatJoin renders value joined count times by ", ".
func repeatJoin(value string, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = value
	}

	return strings.Join(parts, ", ")
}

func importLine(alias, path string) string {
	if alias == lastSegment(path) {
		return `"` + path + `"`
	}

	return alias + ` "` + path + `"`
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}

	return path
}

// isStdlibPath reports whether an import path belongs to the standard
// library: its first segment carries no dot.
func isStdlibPath(path string) bool {
	first, _, _ := strings.Cut(path, "/")

	return !strings.Contains(first, ".")
}

func isExported(name string) bool {
	if name == "" {
		return false
	}

	return unicode.IsUpper(rune(name[0]))
}
