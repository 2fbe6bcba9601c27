package esm

import (
	"fmt"

	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/js_ast"
)

// ThrowModuleNotFoundExpr builds the expression spliced in for requests the
// resolver could not resolve: an immediately-invoked arrow that throws. The
// failure only surfaces when the generated code runs.
func ThrowModuleNotFoundExpr(request string) js_ast.Expr {
	message := fmt.Sprintf("Cannot find module '%s'", request)
	return js_ast.Expr{Data: &js_ast.ECall{
		Target: js_ast.Expr{Data: &js_ast.EArrow{
			Body: js_ast.FnBody{Stmts: []js_ast.Stmt{
				{Data: &js_ast.SThrow{Value: js_ast.Expr{Data: &js_ast.ENew{
					Target: ident("Error"),
					Args:   []js_ast.Expr{str(message)},
				}}}},
			}},
		}},
	}}
}

// Small constructors for the statements this package synthesizes

func ident(name string) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EIdentifier{Name: name}}
}

func str(value string) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EString{Value: value}}
}

func boolean(value bool) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EBoolean{Value: value}}
}

func call(name string, args ...js_ast.Expr) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.ECall{Target: ident(name), Args: args}}
}

func array(items ...js_ast.Expr) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EArray{Items: items}}
}

func varDecl(name string, value js_ast.Expr) js_ast.Stmt {
	return js_ast.Stmt{Data: &js_ast.SLocal{
		Kind: js_ast.LocalVar,
		Decls: []js_ast.Decl{{
			Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: name}},
			Value:   &value,
		}},
	}}
}

func moduleIDExpr(id chunk.ModuleID) js_ast.Expr {
	switch id := id.(type) {
	case chunk.StringID:
		return str(string(id))
	case chunk.NumberID:
		return js_ast.Expr{Data: &js_ast.ENumber{Value: float64(id)}}
	default:
		panic("Internal error")
	}
}
