package codegen

import (
	"github.com/tpack/tpack/internal/js_ast"
)

// A Mutation rewrites one parsed program in place. Mutations are collected
// from every reference and descriptor touching a compiled unit and applied
// later, once, by a single rewrite pass over that unit.
type Mutation func(program *js_ast.Program)

// CodeGeneration is the ordered list of mutations one source produced.
type CodeGeneration struct {
	Mutations []Mutation
}

// Apply runs every collected mutation against the program in one
// deterministic sequence. Two passes must never run concurrently against the
// same program.
func Apply(program *js_ast.Program, gens []CodeGeneration) {
	for _, gen := range gens {
		for _, mutate := range gen.Mutations {
			mutate(program)
		}
	}
}
