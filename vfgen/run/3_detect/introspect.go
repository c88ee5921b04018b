package detect

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// Structs - Public

// Operation is one directly-declared method of a resolved interface.
type Operation struct {
	Name      string
	Qualified string  // "<interface qualified name>.<method name>": recorded op identity
	Params    []Param // recorded parameters, excluding a leading context
	HasCtx    bool
	CtxName   string
	CtxType   dst.Expr
	Results   *dst.FieldList
}

// Param is one recorded parameter.
type Param struct {
	Name string
	Type dst.Expr
}

// Functions - Public

// Introspect lists the operations of an interface in declaration order.
// Embedded interfaces are not expanded: only directly-declared methods are
// recorded and verified, and the generated conformance check surfaces any
// embedded methods the fake consequently lacks.
func Introspect(iface ResolvedInterface) []Operation {
	if iface.Iface.Methods == nil {
		return nil
	}

	reserved := reservedNames(iface)

	var ops []Operation

	for _, field := range iface.Iface.Methods.List {
		if len(field.Names) == 0 {
			continue // embedded interface
		}

		funcType, ok := field.Type.(*dst.FuncType)
		if !ok {
			continue
		}

		ops = append(ops, operationFrom(iface, field.Names[0].Name, funcType, reserved))
	}

	return ops
}

// Methods - Public

// HasResults reports whether the operation returns anything, which makes it
// unverifiable.
func (op Operation) HasResults() bool {
	return op.Results != nil && len(op.Results.List) > 0
}

// Functions - Private

// operationFrom builds the descriptor for one method.
func operationFrom(
	iface ResolvedInterface, name string, funcType *dst.FuncType, reserved map[string]struct{},
) Operation {
	op := Operation{
		Name:      name,
		Qualified: iface.QualifiedName + "." + name,
		Results:   funcType.Results,
	}

	params := flattenParams(funcType.Params, reserved)

	// A leading context rides the signature but is never recorded or matched.
	if len(params) > 0 && isContextType(params[0].Type, iface.SourceImports) {
		op.HasCtx = true
		op.CtxName = params[0].Name
		op.CtxType = params[0].Type
		params = params[1:]
	}

	op.Params = params

	return op
}

// flattenParams expands grouped parameters ("a, b int") into one entry per
// name, renaming the ones that would collide inside a generated method body.
func flattenParams(fields *dst.FieldList, reserved map[string]struct{}) []Param {
	if fields == nil {
		return nil
	}

	var params []Param

	index := 0

	for _, field := range fields.List {
		if len(field.Names) == 0 {
			params = append(params, Param{Name: safeParamName("", index, reserved), Type: field.Type})
			index++

			continue
		}

		for _, ident := range field.Names {
			params = append(params, Param{Name: safeParamName(ident.Name, index, reserved), Type: field.Type})
			index++
		}
	}

	return params
}

// safeParamName keeps a declared parameter name unless it is missing, blank,
// underscore-prefixed, or taken by an identifier the generated body needs.
func safeParamName(name string, index int, reserved map[string]struct{}) string {
	if name == "" || strings.HasPrefix(name, "_") {
		return fmt.Sprintf("arg%d", index)
	}

	if _, taken := reserved[name]; taken {
		return fmt.Sprintf("arg%d", index)
	}

	return name
}

// reservedNames collects the identifiers a parameter must not shadow in a
// generated method: the receiver, the locals the verify branch declares, the
// builtins the body calls, the declaring package's qualifier, and every
// import qualifier the signature may use.
func reservedNames(iface ResolvedInterface) map[string]struct{} {
	reserved := map[string]struct{}{
		"f":        {},
		"recorded": {},
		"matchers": {},
		"args":     {},
		"len":      {},
		"append":   {},
		"panic":    {},
		"any":      {},
	}

	reserved[iface.PkgName] = struct{}{}

	for _, spec := range iface.SourceImports {
		name := LocalImportName(spec)
		if name == "." || name == "_" {
			continue
		}

		reserved[name] = struct{}{}
	}

	return reserved
}

// isContextType reports whether expr names context.Context as imported by
// the declaring file, under any alias.
func isContextType(expr dst.Expr, imports []*dst.ImportSpec) bool {
	sel, ok := expr.(*dst.SelectorExpr)
	if !ok || sel.Sel.Name != "Context" {
		return false
	}

	qualifier, ok := sel.X.(*dst.Ident)
	if !ok {
		return false
	}

	return QualifierImportPath(imports, qualifier.Name) == "context"
}
