package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpack/tpack/internal/js_ast"
)

func TestApplyRunsMutationsInOrder(t *testing.T) {
	appendExpr := func(name string) Mutation {
		return func(program *js_ast.Program) {
			program.Stmts = append(program.Stmts, js_ast.Stmt{Data: &js_ast.SExpr{
				Value: js_ast.Expr{Data: &js_ast.EIdentifier{Name: name}},
			}})
		}
	}

	program := &js_ast.Program{}
	Apply(program, []CodeGeneration{
		{Mutations: []Mutation{appendExpr("a"), appendExpr("b")}},
		{},
		{Mutations: []Mutation{appendExpr("c")}},
	})

	var names []string
	for _, stmt := range program.Stmts {
		names = append(names, stmt.Data.(*js_ast.SExpr).Value.Data.(*js_ast.EIdentifier).Name)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)
}
