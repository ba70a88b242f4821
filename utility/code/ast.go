package code

import (
	"fmt"
	"go/ast"
	"strings"
)

// ExprToString converts an AST expression to string representation
func ExprToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + ExprToString(t.X)
	case *ast.ParenExpr:
		return ExprToString(t.X)
	case *ast.ArrayType:
		if t.Len != nil {
			return "[" + ExprToString(t.Len) + "]" + ExprToString(t.Elt)
		}
		return "[]" + ExprToString(t.Elt)
	case *ast.BasicLit:
		return t.Value
	case *ast.SelectorExpr:
		return ExprToString(t.X) + "." + t.Sel.Name
	case *ast.IndexExpr:
		return ExprToString(t.X) + "[" + ExprToString(t.Index) + "]"
	case *ast.IndexListExpr:
		indices := make([]string, 0, len(t.Indices))
		for _, index := range t.Indices {
			indices = append(indices, ExprToString(index))
		}
		return ExprToString(t.X) + "[" + strings.Join(indices, ", ") + "]"
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", ExprToString(t.Key), ExprToString(t.Value))
	case *ast.InterfaceType:
		return "interface"
	case *ast.StructType:
		return "struct"
	case *ast.Ellipsis:
		return "..." + ExprToString(t.Elt)
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return "chan<- " + ExprToString(t.Value)
		case ast.RECV:
			return "<-chan " + ExprToString(t.Value)
		}
		return "chan " + ExprToString(t.Value)
	case *ast.FuncType:
		// * handle function types
		params := []string{}
		if t.Params != nil {
			for _, param := range t.Params.List {
				params = append(params, ExprToString(param.Type))
			}
		}
		results := []string{}
		if t.Results != nil {
			for _, result := range t.Results.List {
				results = append(results, ExprToString(result.Type))
			}
		}
		sig := "func(" + strings.Join(params, ", ") + ")"
		if len(results) > 0 {
			sig += " (" + strings.Join(results, ", ") + ")"
		}
		return sig
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// ShapeOf classifies a type spec by whether it can carry methods.
func ShapeOf(spec *ast.TypeSpec) Shape {
	if spec.Assign.IsValid() {
		return ShapeAlias
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		return ShapeStruct
	case *ast.InterfaceType:
		return ShapeInterface
	case *ast.StarExpr:
		return ShapePointer
	case *ast.ParenExpr:
		return ShapeOf(&ast.TypeSpec{Name: spec.Name, Type: t.X})
	default:
		return ShapeDefined
	}
}
