package esm

import (
	"github.com/tpack/tpack/internal/js_ast"
	"github.com/tpack/tpack/internal/magic"
)

// The hoist point inside a program body is marked by a reserved string
// literal statement. Synthesized statements are inserted right before it, so
// they always run ahead of the module's own code no matter how many passes
// splice something in.
var hoistingLocation = magic.Mangle("ecmascript hoisting location")

func hoistingMarker() js_ast.Stmt {
	return js_ast.Stmt{Data: &js_ast.SExpr{
		Value: js_ast.Expr{Data: &js_ast.EString{Value: hoistingLocation}},
	}}
}

func isHoistingMarker(stmt js_ast.Stmt) bool {
	if expr, ok := stmt.Data.(*js_ast.SExpr); ok {
		if s, ok := expr.Value.Data.(*js_ast.EString); ok {
			return s.Value == hoistingLocation
		}
	}
	return false
}

// InsertHoistedStmt splices stmt into the program's hoist point. For a module
// body the insert is idempotent: a statement structurally equal to one
// already hoisted is dropped. The script path keeps no such check.
func InsertHoistedStmt(program *js_ast.Program, stmt js_ast.Stmt) {
	switch program.Kind {
	case js_ast.ProgramModule:
		pos := -1
		for i, item := range program.Stmts {
			if isHoistingMarker(item) {
				pos = i
				break
			}
		}
		if pos >= 0 {
			for _, item := range program.Stmts[:pos] {
				if js_ast.StmtsEqual(item, stmt) {
					return
				}
			}
			program.Stmts = insertAt(program.Stmts, pos, stmt)
		} else {
			program.Stmts = append([]js_ast.Stmt{stmt, hoistingMarker()}, program.Stmts...)
		}

	case js_ast.ProgramScript:
		pos := -1
		for i, item := range program.Stmts {
			if isHoistingMarker(item) {
				pos = i
				break
			}
		}
		if pos >= 0 {
			program.Stmts = insertAt(program.Stmts, pos, stmt)
		} else {
			program.Stmts = insertAt(program.Stmts, 0, hoistingMarker())
			program.Stmts = insertAt(program.Stmts, 0, stmt)
		}
	}
}

func insertAt(stmts []js_ast.Stmt, pos int, stmt js_ast.Stmt) []js_ast.Stmt {
	stmts = append(stmts, js_ast.Stmt{})
	copy(stmts[pos+1:], stmts[pos:])
	stmts[pos] = stmt
	return stmts
}
