package js_printer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpack/tpack/internal/js_ast"
)

func expectPrintedStmt(t *testing.T, stmt js_ast.Stmt, expected string) {
	t.Helper()
	require.Equal(t, expected, string(PrintStmt(stmt)))
}

func ident(name string) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EIdentifier{Name: name}}
}

func str(value string) js_ast.Expr {
	return js_ast.Expr{Data: &js_ast.EString{Value: value}}
}

func TestVarDecl(t *testing.T) {
	value := js_ast.Expr{Data: &js_ast.ECall{
		Target: ident("__turbopack_import__"),
		Args:   []js_ast.Expr{{Data: &js_ast.ENumber{Value: 0}}},
	}}
	expectPrintedStmt(t, js_ast.Stmt{Data: &js_ast.SLocal{
		Kind: js_ast.LocalVar,
		Decls: []js_ast.Decl{{
			Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "a"}},
			Value:   &value,
		}},
	}}, `var a = __turbopack_import__(0);`)
}

func TestStringAndBoolArgs(t *testing.T) {
	value := js_ast.Expr{Data: &js_ast.ECall{
		Target: ident("__turbopack_external_require__"),
		Args:   []js_ast.Expr{str("fs"), {Data: &js_ast.EBoolean{Value: true}}},
	}}
	expectPrintedStmt(t, js_ast.Stmt{Data: &js_ast.SLocal{
		Kind: js_ast.LocalVar,
		Decls: []js_ast.Decl{{
			Binding: js_ast.Binding{Data: &js_ast.BIdentifier{Name: "x"}},
			Value:   &value,
		}},
	}}, `var x = __turbopack_external_require__("fs", true);`)
}

func TestDestructuringAssignment(t *testing.T) {
	handle := ident("__turbopack_async_dependencies__")
	stmt := js_ast.Stmt{Data: &js_ast.SExpr{Value: js_ast.Expr{Data: &js_ast.EBinary{
		Op:   js_ast.BinOpAssign,
		Left: js_ast.Expr{Data: &js_ast.EArray{Items: []js_ast.Expr{ident("a"), ident("b")}}},
		Right: js_ast.Expr{Data: &js_ast.EIf{
			Test: js_ast.Expr{Data: &js_ast.EDot{Target: handle, Name: "then"}},
			Yes:  js_ast.Expr{Data: &js_ast.ECall{Target: js_ast.Expr{Data: &js_ast.EAwait{Value: handle}}}},
			No:   handle,
		}},
	}}}}
	expectPrintedStmt(t, stmt,
		`[a, b] = __turbopack_async_dependencies__.then ? (await __turbopack_async_dependencies__)() : __turbopack_async_dependencies__;`)
}

func TestThrowingArrowIIFE(t *testing.T) {
	stmt := js_ast.Stmt{Data: &js_ast.SExpr{Value: js_ast.Expr{Data: &js_ast.ECall{
		Target: js_ast.Expr{Data: &js_ast.EArrow{
			Body: js_ast.FnBody{Stmts: []js_ast.Stmt{
				{Data: &js_ast.SThrow{Value: js_ast.Expr{Data: &js_ast.ENew{
					Target: ident("Error"),
					Args:   []js_ast.Expr{str("Cannot find module './missing'")},
				}}}},
			}},
		}},
	}}}}
	expectPrintedStmt(t, stmt, `(() => { throw new Error("Cannot find module './missing'"); })();`)
}

func TestStringEscapes(t *testing.T) {
	expectPrintedStmt(t, js_ast.Stmt{Data: &js_ast.SExpr{Value: str("a\"b\\c\nd")}}, `"a\"b\\c\nd";`)
}

func TestPrintProgram(t *testing.T) {
	program := &js_ast.Program{Stmts: []js_ast.Stmt{
		{Data: &js_ast.SExpr{Value: str("marker")}},
		{Data: &js_ast.SEmpty{}},
	}}
	require.Equal(t, "\"marker\";\n;\n", string(Print(program)))
}
