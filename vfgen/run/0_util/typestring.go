// Package astutil provides shared helpers for rendering dst type expressions
// back to Go source.
package astutil

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// TypeString renders a type expression as Go source text.
func TypeString(expr dst.Expr) string {
	return typeString(expr, nil)
}

// QualifiedTypeString renders a type expression as Go source text, rewriting
// every unqualified named type through qualify. It is used when a signature
// is rendered outside the package that declared it, so package-local type
// names gain an import qualifier.
func QualifiedTypeString(expr dst.Expr, qualify func(name string) string) string {
	return typeString(expr, qualify)
}

// IsBuiltinType reports whether name is a predeclared type identifier, which
// never takes a package qualifier.
func IsBuiltinType(name string) bool {
	switch name {
	case "any", "bool", "byte", "comparable", "complex64", "complex128",
		"error", "float32", "float64",
		"int", "int8", "int16", "int32", "int64",
		"rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
		return true
	default:
		return false
	}
}

//nolint:cyclop,funlen // Type-switch dispatcher over the dst expression kinds; complexity is inherent
func typeString(expr dst.Expr, qualify func(string) string) string {
	if expr == nil {
		return ""
	}

	switch typed := expr.(type) {
	case *dst.Ident:
		if typed.Path != "" {
			// dst resolves some selector expressions to path-qualified idents.
			return typed.Path + "." + typed.Name
		}

		if qualify != nil && !IsBuiltinType(typed.Name) {
			return qualify(typed.Name)
		}

		return typed.Name
	case *dst.BasicLit:
		return typed.Value
	case *dst.SelectorExpr:
		return typeString(typed.X, nil) + "." + typed.Sel.Name
	case *dst.StarExpr:
		return "*" + typeString(typed.X, qualify)
	case *dst.ArrayType:
		if typed.Len != nil {
			return "[" + typeString(typed.Len, nil) + "]" + typeString(typed.Elt, qualify)
		}

		return "[]" + typeString(typed.Elt, qualify)
	case *dst.MapType:
		return "map[" + typeString(typed.Key, qualify) + "]" + typeString(typed.Value, qualify)
	case *dst.ChanType:
		switch typed.Dir {
		case dst.SEND:
			return "chan<- " + typeString(typed.Value, qualify)
		case dst.RECV:
			return "<-chan " + typeString(typed.Value, qualify)
		default:
			return "chan " + typeString(typed.Value, qualify)
		}
	case *dst.Ellipsis:
		return "..." + typeString(typed.Elt, qualify)
	case *dst.FuncType:
		return funcTypeString(typed, qualify)
	case *dst.InterfaceType:
		return interfaceTypeString(typed, qualify)
	case *dst.StructType:
		return structTypeString(typed, qualify)
	case *dst.IndexExpr:
		return typeString(typed.X, qualify) + "[" + typeString(typed.Index, qualify) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typed.Indices))
		for i, index := range typed.Indices {
			indices[i] = typeString(index, qualify)
		}

		return typeString(typed.X, qualify) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + typeString(typed.X, qualify) + ")"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// funcTypeString renders a function type with per-name expanded parameters
// and results, types only.
func funcTypeString(funcType *dst.FuncType, qualify func(string) string) string {
	var buf strings.Builder

	buf.WriteString("func(")
	buf.WriteString(strings.Join(fieldTypes(funcType.Params, qualify), ", "))
	buf.WriteString(")")

	results := fieldTypes(funcType.Results, qualify)

	switch len(results) {
	case 0:
	case 1:
		buf.WriteString(" " + results[0])
	default:
		buf.WriteString(" (" + strings.Join(results, ", ") + ")")
	}

	return buf.String()
}

// interfaceTypeString renders interface literals appearing inside signatures.
func interfaceTypeString(ifaceType *dst.InterfaceType, qualify func(string) string) string {
	if ifaceType.Methods == nil || len(ifaceType.Methods.List) == 0 {
		return "interface{}"
	}

	parts := make([]string, 0, len(ifaceType.Methods.List))

	for _, method := range ifaceType.Methods.List {
		if len(method.Names) == 0 {
			parts = append(parts, typeString(method.Type, qualify))

			continue
		}

		funcType, ok := method.Type.(*dst.FuncType)
		if !ok {
			continue
		}

		// Method signatures drop the "func" keyword inside interface bodies.
		parts = append(parts, method.Names[0].Name+strings.TrimPrefix(funcTypeString(funcType, qualify), "func"))
	}

	return "interface{ " + strings.Join(parts, "; ") + " }"
}

// structTypeString renders struct literals appearing inside signatures.
func structTypeString(structType *dst.StructType, qualify func(string) string) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		var fieldStr strings.Builder

		if len(field.Names) > 0 {
			names := make([]string, len(field.Names))
			for i, name := range field.Names {
				names[i] = name.Name
			}

			fieldStr.WriteString(strings.Join(names, ", ") + " ")
		}

		fieldStr.WriteString(typeString(field.Type, qualify))

		if field.Tag != nil {
			fieldStr.WriteString(" " + field.Tag.Value)
		}

		fields = append(fields, fieldStr.String())
	}

	return "struct{ " + strings.Join(fields, "; ") + " }"
}

// fieldTypes expands a field list into one rendered type per declared name
// (or one per field when unnamed).
func fieldTypes(fields *dst.FieldList, qualify func(string) string) []string {
	if fields == nil {
		return nil
	}

	var parts []string

	for _, field := range fields.List {
		rendered := typeString(field.Type, qualify)

		count := len(field.Names)
		if count == 0 {
			count = 1
		}

		for i := 0; i < count; i++ {
			parts = append(parts, rendered)
		}
	}

	return parts
}
